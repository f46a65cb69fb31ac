package parser

import (
	"testing"

	"rsharp/internal/ast"
	"rsharp/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.Program, *Error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rsharp", []byte(src))
	return Parse(fs.Get(id))
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

func exprOf(t *testing.T, prog *ast.Program, idx int) ast.Expr {
	t.Helper()
	if idx >= len(prog.Stmts) {
		t.Fatalf("expected at least %d statements, got %d", idx+1, len(prog.Stmts))
	}
	stmt, ok := prog.Stmts[idx].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement %d is %T, want *ast.ExprStmt", idx, prog.Stmts[idx])
	}
	return stmt.X
}
