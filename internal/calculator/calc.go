// Package calculator provides basic arithmetic operations over operands
// bounded to a fixed inclusive range.
package calculator

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// MinValue is the smallest operand accepted by the default range.
	MinValue = -1_000_000
	// MaxValue is the largest operand accepted by the default range.
	MaxValue = 1_000_000
)

// Range is an inclusive interval of accepted operand values.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange returns [MinValue, MaxValue].
func DefaultRange() Range {
	return Range{Min: MinValue, Max: MaxValue}
}

// Contains reports whether v lies within the range. NaN is never contained.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", formatValue(r.Min), formatValue(r.Max))
}

// Calculator performs the four arithmetic operations after checking both
// operands against its range. It holds no mutable state and is safe for
// concurrent use. The zero value uses DefaultRange.
type Calculator struct {
	bounds *Range
}

// New returns a Calculator over DefaultRange.
func New() *Calculator {
	return &Calculator{}
}

// NewWithRange returns a Calculator over [lo, hi].
func NewWithRange(lo, hi float64) (*Calculator, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, fmt.Errorf("range bounds must be numbers, got [%v, %v]", lo, hi)
	}
	if lo > hi {
		return nil, fmt.Errorf("range min %s is greater than max %s", formatValue(lo), formatValue(hi))
	}
	return &Calculator{bounds: &Range{Min: lo, Max: hi}}, nil
}

// Range returns the operand range enforced by c.
func (c *Calculator) Range() Range {
	if c == nil || c.bounds == nil {
		return DefaultRange()
	}
	return *c.bounds
}

// Add returns a + b.
func (c *Calculator) Add(a, b float64) (float64, error) {
	if err := c.validate(OpAdd, a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// Subtract returns a minus b.
func (c *Calculator) Subtract(a, b float64) (float64, error) {
	if err := c.validate(OpSubtract, a, b); err != nil {
		return 0, err
	}
	return a - b, nil
}

// Multiply returns a times b.
func (c *Calculator) Multiply(a, b float64) (float64, error) {
	if err := c.validate(OpMultiply, a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// Divide returns a divided by b. A zero divisor fails with ErrDivisionByZero
// once both operands have passed range validation.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if err := c.validate(OpDivide, a, b); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, fmt.Errorf("divide %s by zero: %w", formatValue(a), ErrDivisionByZero)
	}
	return a / b, nil
}

// Apply runs op on a and b.
func (c *Calculator) Apply(op Op, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return c.Add(a, b)
	case OpSubtract:
		return c.Subtract(a, b)
	case OpMultiply:
		return c.Multiply(a, b)
	case OpDivide:
		return c.Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
}

// validate checks the first operand before the second and reports only the
// first violation.
func (c *Calculator) validate(op Op, a, b float64) error {
	r := c.Range()
	if !r.Contains(a) {
		return &InvalidInputError{Op: op, Position: FirstOperand, Value: a, Range: r}
	}
	if !r.Contains(b) {
		return &InvalidInputError{Op: op, Position: SecondOperand, Value: b, Range: r}
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
