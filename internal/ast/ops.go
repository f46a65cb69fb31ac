package ast

import "rsharp/internal/source"

// BinaryKind enumerates binary operator kinds.
type BinaryKind uint8

const (
	// BinaryAdd represents the addition operator (+).
	BinaryAdd BinaryKind = iota
	// BinarySub represents the subtraction operator (-).
	BinarySub
	// BinaryMul represents the multiplication operator (*).
	BinaryMul
	// BinaryDiv represents the division operator (/).
	BinaryDiv
	// BinaryAnd represents the logical AND operator (&&).
	BinaryAnd
	// BinaryOr represents the logical OR operator (||).
	BinaryOr
)

func (k BinaryKind) String() string {
	switch k {
	case BinaryAdd:
		return "Add"
	case BinarySub:
		return "Sub"
	case BinaryMul:
		return "Mul"
	case BinaryDiv:
		return "Div"
	case BinaryAnd:
		return "And"
	case BinaryOr:
		return "Or"
	}
	return "BinaryKind(?)"
}

// Symbol returns the source spelling of the operator.
func (k BinaryKind) Symbol() string {
	switch k {
	case BinaryAdd:
		return "+"
	case BinarySub:
		return "-"
	case BinaryMul:
		return "*"
	case BinaryDiv:
		return "/"
	case BinaryAnd:
		return "&&"
	case BinaryOr:
		return "||"
	}
	return "?"
}

// BinaryOp is an operator occurrence; Span covers the operator token.
type BinaryOp struct {
	Kind BinaryKind
	Span source.Span
}
