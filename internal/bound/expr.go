package bound

import "rsharp/internal/types"

// Expr is one of *Int, *Bool, *String, *Declaration, *Binary, *Paren, *Print.
type Expr interface {
	boundExpr()
}

type Int struct {
	Value int32
}

type Bool struct {
	Value bool
}

type String struct {
	Value string
}

// Declaration names a value. At statement level it introduces Name; nested
// inside another expression it is a reference echoing the stored value.
type Declaration struct {
	Name string
	Type types.Type
	Rhs  Expr
}

type Binary struct {
	Op   types.BinaryOp
	Lhs  Expr
	Rhs  Expr
	Type types.Type
}

type Paren struct {
	X Expr
}

type Print struct {
	Type types.Type
	X    Expr
}

func (*Int) boundExpr()         {}
func (*Bool) boundExpr()        {}
func (*String) boundExpr()      {}
func (*Declaration) boundExpr() {}
func (*Binary) boundExpr()      {}
func (*Paren) boundExpr()       {}
func (*Print) boundExpr()       {}

// TypeOf derives the static type of e. It is defined for every variant;
// a nil or foreign Expr is a programming error and panics.
func TypeOf(e Expr) types.Type {
	switch e := e.(type) {
	case *Int:
		return types.Int
	case *Bool:
		return types.Bool
	case *String:
		return types.String
	case *Declaration:
		return e.Type
	case *Binary:
		return e.Type
	case *Paren:
		return TypeOf(e.X)
	case *Print:
		return e.Type
	}
	panic("bound: TypeOf on unknown expression")
}
