package sema

import (
	"errors"
	"strings"
	"testing"

	"rsharp/internal/ast"
	"rsharp/internal/bound"
	"rsharp/internal/diag"
	"rsharp/internal/parser"
	"rsharp/internal/source"
	"rsharp/internal/types"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rsharp", []byte(src))
	prog, err := parser.Parse(fs.Get(id))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

func bindErr(t *testing.T, b *Binder, src string) *BindError {
	t.Helper()
	out, err := b.Bind(parse(t, src))
	if err == nil {
		t.Fatalf("bind %q: expected error", src)
	}
	if out != nil {
		t.Fatalf("bind %q: expected nil program on error", src)
	}
	var be *BindError
	if !errors.As(err, &be) {
		t.Fatalf("bind %q: error %T is not *BindError", src, err)
	}
	return be
}

func mustBind(t *testing.T, b *Binder, src string) *bound.Program {
	t.Helper()
	out, err := b.Bind(parse(t, src))
	if err != nil {
		t.Fatalf("bind %q: %v", src, err)
	}
	return out
}

func TestBindDeclaration(t *testing.T) {
	b := New(Options{})
	out := mustBind(t, b, "let x = 2 + 3;")
	if len(out.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(out.Stmts))
	}
	decl, ok := out.Stmts[0].Expr.(*bound.Declaration)
	if !ok {
		t.Fatalf("expected *bound.Declaration, got %T", out.Stmts[0].Expr)
	}
	if decl.Name != "x" || decl.Type != types.Int {
		t.Fatalf("unexpected declaration %+v", decl)
	}
	bin, ok := decl.Rhs.(*bound.Binary)
	if !ok || bin.Op != types.OpAdd || bin.Type != types.Int {
		t.Fatalf("unexpected rhs %#v", decl.Rhs)
	}
	if got := b.Names(); len(got) != 1 || got[0] != "x" {
		t.Fatalf("names = %v", got)
	}
}

func TestBindReferenceEchoesStoredValue(t *testing.T) {
	b := New(Options{})
	out := mustBind(t, b, "let x = true; let y = x;")
	decl := out.Stmts[1].Expr.(*bound.Declaration)
	if decl.Type != types.Bool {
		t.Fatalf("y type = %s, want Bool", decl.Type)
	}
	ref, ok := decl.Rhs.(*bound.Declaration)
	if !ok || ref.Name != "x" || ref.Type != types.Bool {
		t.Fatalf("unexpected reference %#v", decl.Rhs)
	}
	if v, ok := ref.Rhs.(*bound.Bool); !ok || !v.Value {
		t.Fatalf("reference does not carry stored value: %#v", ref.Rhs)
	}
}

func TestBindParenIsTransparent(t *testing.T) {
	b := New(Options{})
	out := mustBind(t, b, "(1 + 2) * 3;")
	bin, ok := out.Stmts[0].Expr.(*bound.Binary)
	if !ok || bin.Op != types.OpMul {
		t.Fatalf("unexpected %#v", out.Stmts[0].Expr)
	}
	if _, ok := bin.Lhs.(*bound.Binary); !ok {
		t.Fatalf("lhs = %T, want *bound.Binary", bin.Lhs)
	}
}

func TestBindLogicalOperators(t *testing.T) {
	b := New(Options{})
	out := mustBind(t, b, "true && false || true;")
	bin := out.Stmts[0].Expr.(*bound.Binary)
	if bin.Op != types.OpOr || bin.Type != types.Bool {
		t.Fatalf("unexpected top %v %s", bin.Op, bin.Type)
	}
	if inner := bin.Lhs.(*bound.Binary); inner.Op != types.OpAnd {
		t.Fatalf("'&&' bound as %v", inner.Op)
	}
}

func TestBindDuplicateStops(t *testing.T) {
	b := New(Options{})
	be := bindErr(t, b, "let x = 1; let x = 2; y;")
	if len(be.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(be.Diagnostics), be)
	}
	d := be.Diagnostics[0]
	if d.Code != diag.SemaDuplicateDeclaration || d.Message != "Variable identifier is already taken" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Primary.Start != 15 || d.Primary.End != 16 {
		t.Fatalf("span = %d..%d, want 15..16", d.Primary.Start, d.Primary.End)
	}
	if len(d.Notes) != 1 || d.Notes[0].Span.Start != 4 {
		t.Fatalf("expected note at first declaration, got %+v", d.Notes)
	}
}

func TestBindDuplicateNotesEarlierCall(t *testing.T) {
	b := New(Options{})
	mustBind(t, b, "let q = 1; let r = 2;")
	be := bindErr(t, b, "let r = 3;")
	d := be.Diagnostics[0]
	if d.Primary.Start != 4 {
		t.Fatalf("primary start = %d, want 4", d.Primary.Start)
	}
	if len(d.Notes) != 1 || d.Notes[0].Span.Start != 15 || d.Notes[0].Span.End != 16 {
		t.Fatalf("expected note at r in the first call, got %+v", d.Notes)
	}
	if got := b.Names(); len(got) != 2 {
		t.Fatalf("names = %v, want [q r]", got)
	}
}

func TestBindUndefinedVariable(t *testing.T) {
	b := New(Options{})
	be := bindErr(t, b, "1 + foo;")
	d := be.Diagnostics[0]
	if d.Code != diag.SemaUndefinedVariable || d.Message != "Variable is undefined" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Primary.Start != 4 || d.Primary.End != 7 {
		t.Fatalf("span = %d..%d, want 4..7", d.Primary.Start, d.Primary.End)
	}
}

func TestBindTypeMismatch(t *testing.T) {
	b := New(Options{})
	be := bindErr(t, b, "1 + true;")
	d := be.Diagnostics[0]
	if d.Message != "Cannot perform 'add' between Int and Bool." {
		t.Fatalf("message = %q", d.Message)
	}
	if d.Primary.Start != 0 || d.Primary.End != 8 {
		t.Fatalf("span = %d..%d, want 0..8", d.Primary.Start, d.Primary.End)
	}
}

func TestBindMismatchMessages(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"a" - 1;`, "Cannot perform 'sub' between String and Int."},
		{"true * false;", "Cannot perform 'mul' between Bool and Bool."},
		{"1 / true;", "Cannot perform 'div' between Int and Bool."},
		{"1 && true;", "Cannot perform 'and' between Int and Bool."},
		{`true || "x";`, "Cannot perform 'or' between Bool and String."},
	}
	for _, tc := range cases {
		be := bindErr(t, New(Options{}), tc.src)
		if got := be.Diagnostics[0].Message; got != tc.want {
			t.Errorf("%s: message = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestBindLeftErrorWins(t *testing.T) {
	be := bindErr(t, New(Options{}), "a + b;")
	if len(be.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(be.Diagnostics))
	}
	if be.Diagnostics[0].Primary.Start != 0 {
		t.Fatalf("expected left operand reported, got start %d", be.Diagnostics[0].Primary.Start)
	}
}

func TestBindCollectsAcrossStatements(t *testing.T) {
	be := bindErr(t, New(Options{}), "a; 1 + true; let z = q;")
	if len(be.Diagnostics) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d: %v", len(be.Diagnostics), be)
	}
	if !strings.HasPrefix(be.Error(), "3 errors:") {
		t.Fatalf("error text = %q", be.Error())
	}
}

func TestBindPrint(t *testing.T) {
	b := New(Options{})
	out := mustBind(t, b, `let x = 2; print 1; print x; print "s"; print true;`)
	want := []types.Type{types.Int, types.Int, types.String, types.Bool}
	for i, ty := range want {
		p, ok := out.Stmts[i+1].Expr.(*bound.Print)
		if !ok {
			t.Fatalf("stmt %d = %T, want *bound.Print", i+1, out.Stmts[i+1].Expr)
		}
		if p.Type != ty {
			t.Errorf("stmt %d type = %s, want %s", i+1, p.Type, ty)
		}
	}
	ref := out.Stmts[2].Expr.(*bound.Print).X.(*bound.Declaration)
	if ref.Name != "x" {
		t.Fatalf("print target = %q", ref.Name)
	}
}

func TestBindPrintNonLiteral(t *testing.T) {
	cases := []struct {
		src        string
		start, end uint32
	}{
		{"print 1 + 2;", 6, 11},
		{"print (1);", 7, 8},
	}
	for _, tc := range cases {
		be := bindErr(t, New(Options{}), tc.src)
		d := be.Diagnostics[0]
		if d.Code != diag.SemaNonLiteralPrintTarget || d.Message != "Can only print literals" {
			t.Fatalf("%s: unexpected diagnostic %+v", tc.src, d)
		}
		if d.Primary.Start != tc.start || d.Primary.End != tc.end {
			t.Errorf("%s: span = %d..%d, want %d..%d", tc.src, d.Primary.Start, d.Primary.End, tc.start, tc.end)
		}
	}
}

func TestBindRollsBackOnFailure(t *testing.T) {
	b := New(Options{})
	mustBind(t, b, "let a = 1;")
	bindErr(t, b, "let b = 2; let c = nope;")
	if got := b.Names(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("names after failed bind = %v, want [a]", got)
	}
	if _, ok := b.Lookup("b"); ok {
		t.Fatal("b survived a failed bind")
	}
	// b is free again
	mustBind(t, b, "let b = a;")
}

func TestBindPersistsAcrossCalls(t *testing.T) {
	b := New(Options{})
	mustBind(t, b, "let x = 5;")
	out := mustBind(t, b, "x + 1;")
	if bin := out.Stmts[0].Expr.(*bound.Binary); bin.Type != types.Int {
		t.Fatalf("type = %s", bin.Type)
	}
	bindErr(t, b, "let x = 6;")
}

func TestBinderRestore(t *testing.T) {
	b := New(Options{})
	mustBind(t, b, "let a = 1;")
	m := b.Mark()
	mustBind(t, b, "let b = 2; let c = 3;")
	b.Restore(m)
	if got := b.Names(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("names after restore = %v", got)
	}
}
