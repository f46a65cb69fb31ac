package llvm

import (
	"rsharp/internal/bound"
	"rsharp/internal/types"
)

func lowerType(t types.Type) (Type, error) {
	switch t {
	case types.Int:
		return I32, nil
	case types.Bool, types.String:
		return Type{}, notSupported("%s values", t)
	}
	return Type{}, invariant("unknown type %s", t)
}

// lowerStmt lowers a statement-level expression. A declaration there keeps
// its initializer; everywhere else it is a reference.
func lowerStmt(e bound.Expr) (Statement, error) {
	if d, ok := e.(*bound.Declaration); ok {
		ty, err := lowerType(d.Type)
		if err != nil {
			return nil, err
		}
		init, err := lowerExpr(d.Rhs)
		if err != nil {
			return nil, err
		}
		return &Variable{Name: d.Name, Type: ty, Init: init}, nil
	}
	return lowerExpr(e)
}

func lowerExpr(e bound.Expr) (Statement, error) {
	switch e := e.(type) {
	case nil:
		return nil, invariant("nil expression")
	case *bound.Int:
		return I32Literal{Value: e.Value}, nil
	case *bound.Bool:
		return nil, notSupported("bool literal")
	case *bound.String:
		return nil, notSupported("text literal")
	case *bound.Declaration:
		ty, err := lowerType(e.Type)
		if err != nil {
			return nil, err
		}
		return &Variable{Name: e.Name, Type: ty}, nil
	case *bound.Binary:
		if e.Op != types.OpAdd {
			return nil, notSupported("operator '%s'", e.Op.Name())
		}
		lhs, err := lowerExpr(e.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := lowerExpr(e.Rhs)
		if err != nil {
			return nil, err
		}
		return &Addition{Lhs: lhs, Rhs: rhs}, nil
	case *bound.Paren:
		return nil, invariant("parenthesized expression survived binding")
	case *bound.Print:
		ty, err := lowerType(e.Type)
		if err != nil {
			return nil, err
		}
		x, err := lowerExpr(e.X)
		if err != nil {
			return nil, err
		}
		return &Print{Type: ty, X: x}, nil
	}
	return nil, invariant("unknown bound expression %T", e)
}
