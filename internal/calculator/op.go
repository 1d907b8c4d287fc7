package calculator

// Op names one of the four arithmetic operations.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// Ops returns every supported operation in display order.
func Ops() []Op {
	return []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Symbol returns the arithmetic symbol for o, or "?" if o is unknown.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Valid reports whether o is one of the four supported operations.
func (o Op) Valid() bool {
	return o.Symbol() != "?"
}

func (o Op) String() string {
	return string(o)
}
