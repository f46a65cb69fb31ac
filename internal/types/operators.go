package types

import "fmt"

// BinaryOp enumerates the typed binary operators.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	default:
		return fmt.Sprintf("BinaryOp(%d)", op)
	}
}

// Name is the lowercase spelling used in diagnostics, e.g. "add".
func (op BinaryOp) Name() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return fmt.Sprintf("op%d", op)
	}
}

// BinarySpec is the fixed contract of an operator: both operands must be
// Operand, and the result is Result.
type BinarySpec struct {
	Operand Type
	Result  Type
}

var binarySpecs = [...]BinarySpec{
	OpAdd: {Operand: Int, Result: Int},
	OpSub: {Operand: Int, Result: Int},
	OpMul: {Operand: Int, Result: Int},
	OpDiv: {Operand: Int, Result: Int},
	OpAnd: {Operand: Bool, Result: Bool},
	OpOr:  {Operand: Bool, Result: Bool},
}

// BinarySpecFor returns the contract of op.
func BinarySpecFor(op BinaryOp) (BinarySpec, bool) {
	if int(op) >= len(binarySpecs) {
		return BinarySpec{}, false
	}
	return binarySpecs[op], true
}

// Accepts reports whether the operand types satisfy the contract.
func (s BinarySpec) Accepts(lhs, rhs Type) bool {
	return lhs == s.Operand && rhs == s.Operand
}
