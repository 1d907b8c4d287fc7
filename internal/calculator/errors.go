package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every out-of-range operand failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownOperation is returned by Apply for an unrecognized Op.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Position identifies which operand of an operation failed validation.
type Position int

const (
	FirstOperand Position = iota + 1
	SecondOperand
)

func (p Position) String() string {
	switch p {
	case FirstOperand:
		return "first"
	case SecondOperand:
		return "second"
	default:
		return "unknown"
	}
}

// InvalidInputError reports an operand outside the calculator's range.
type InvalidInputError struct {
	Op       Op
	Position Position
	Value    float64
	Range    Range
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s operand %s of %s is outside the valid range %s",
		e.Position, formatValue(e.Value), e.Op, e.Range)
}

// Is makes errors.Is(err, ErrInvalidInput) hold for any InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
