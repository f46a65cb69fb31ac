package sema

import (
	"fmt"

	"rsharp/internal/ast"
	"rsharp/internal/bound"
	"rsharp/internal/diag"
	"rsharp/internal/types"
)

// bindExpr returns the bound form of e, or a pending diagnostic that the
// caller emits once it knows the failure is the one to report.
func (p *bindPass) bindExpr(e ast.Expr) (bound.Expr, *diag.ReportBuilder) {
	switch e := e.(type) {
	case *ast.IntLit:
		return &bound.Int{Value: e.Value}, nil
	case *ast.BoolLit:
		return &bound.Bool{Value: e.Value}, nil
	case *ast.StringLit:
		return &bound.String{Value: e.Value}, nil
	case *ast.Paren:
		return p.bindExpr(e.X)
	case *ast.Ident:
		return p.resolve(e)
	case *ast.Binary:
		return p.bindBinary(e)
	case *ast.Print:
		return p.bindPrint(e)
	}
	panic(fmt.Sprintf("sema: unknown expression type %T", e))
}

// resolve turns a name into a declaration-shaped reference echoing the
// stored type and value.
func (p *bindPass) resolve(id *ast.Ident) (bound.Expr, *diag.ReportBuilder) {
	_, sym := p.binder.table.Lookup(id.Name)
	if sym == nil {
		return nil, diag.ReportError(&p.sink, diag.SemaUndefinedVariable, id.Span, "Variable is undefined")
	}
	return &bound.Declaration{
		Name: id.Name,
		Type: bound.TypeOf(sym.Value),
		Rhs:  sym.Value,
	}, nil
}

func (p *bindPass) bindBinary(e *ast.Binary) (bound.Expr, *diag.ReportBuilder) {
	// both sides are bound even when the left fails; the left failure wins
	lhs, lhsFail := p.bindExpr(e.Lhs)
	rhs, rhsFail := p.bindExpr(e.Rhs)
	if lhsFail != nil {
		return nil, lhsFail
	}
	if rhsFail != nil {
		return nil, rhsFail
	}

	op := boundOp(e.Op.Kind)
	spec, _ := types.BinarySpecFor(op)
	lt, rt := bound.TypeOf(lhs), bound.TypeOf(rhs)
	if !spec.Accepts(lt, rt) {
		msg := fmt.Sprintf("Cannot perform '%s' between %s and %s.", op.Name(), lt, rt)
		return nil, diag.ReportError(&p.sink, diag.SemaTypeMismatchInBinaryOp, ast.SpanOf(e), msg)
	}
	return &bound.Binary{Op: op, Lhs: lhs, Rhs: rhs, Type: spec.Result}, nil
}

// bindPrint accepts literals and variables only. A parenthesized literal is
// rejected as well.
func (p *bindPass) bindPrint(e *ast.Print) (bound.Expr, *diag.ReportBuilder) {
	switch x := e.X.(type) {
	case *ast.IntLit:
		return &bound.Print{Type: types.Int, X: &bound.Int{Value: x.Value}}, nil
	case *ast.StringLit:
		return &bound.Print{Type: types.String, X: &bound.String{Value: x.Value}}, nil
	case *ast.BoolLit:
		return &bound.Print{Type: types.Bool, X: &bound.Bool{Value: x.Value}}, nil
	case *ast.Ident:
		ref, failure := p.resolve(x)
		if failure != nil {
			return nil, failure
		}
		return &bound.Print{Type: bound.TypeOf(ref), X: ref}, nil
	case *ast.Binary, *ast.Paren, *ast.Print:
		return nil, diag.ReportError(&p.sink, diag.SemaNonLiteralPrintTarget, ast.SpanOf(x), "Can only print literals")
	}
	panic(fmt.Sprintf("sema: unknown print target %T", e.X))
}

func boundOp(k ast.BinaryKind) types.BinaryOp {
	switch k {
	case ast.BinaryAdd:
		return types.OpAdd
	case ast.BinarySub:
		return types.OpSub
	case ast.BinaryMul:
		return types.OpMul
	case ast.BinaryDiv:
		return types.OpDiv
	case ast.BinaryAnd:
		return types.OpAnd
	case ast.BinaryOr:
		return types.OpOr
	}
	panic(fmt.Sprintf("sema: unknown binary operator %v", k))
}
