package sema

import (
	"rsharp/internal/ast"
	"rsharp/internal/bound"
	"rsharp/internal/diag"
	"rsharp/internal/symbols"
	"rsharp/internal/trace"
)

// bindStmt returns the bound statement, or nil on error, and whether the
// whole call must stop.
func (p *bindPass) bindStmt(stmt ast.Stmt) (*bound.Statement, bool) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		expr, failure := p.bindExpr(s.X)
		if failure != nil {
			failure.Emit()
			return nil, false
		}
		trace.Point(p.binder.tracer, trace.ScopeNode, "expr", p.span, "")
		return &bound.Statement{Expr: expr}, false

	case *ast.DeclareStmt:
		return p.bindDeclare(s)
	}
	panic("sema: unknown statement type")
}

func (p *bindPass) bindDeclare(s *ast.DeclareStmt) (*bound.Statement, bool) {
	table := p.binder.table
	if id, _ := table.Lookup(s.Name.Name); id.IsValid() {
		diag.ReportError(&p.sink, diag.SemaDuplicateDeclaration, s.Name.Span,
			"Variable identifier is already taken").
			WithNote(table.Get(id).Decl, "previously declared here").
			Emit()
		return nil, true
	}

	rhs, failure := p.bindExpr(s.Rhs)
	if failure != nil {
		failure.Emit()
		return nil, false
	}

	if _, ok := table.Declare(symbols.Symbol{Name: s.Name.Name, Value: rhs, Decl: s.Name.Span}); !ok {
		panic("sema: duplicate declaration survived lookup")
	}
	trace.Point(p.binder.tracer, trace.ScopeNode, "declare", p.span, s.Name.Name)
	return &bound.Statement{Expr: &bound.Declaration{
		Name: s.Name.Name,
		Type: bound.TypeOf(rhs),
		Rhs:  rhs,
	}}, false
}
