package ast

import (
	"testing"

	"rsharp/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestSpanOf(t *testing.T) {
	// 1 + true  /  (1 + 2)  /  print x
	one := &IntLit{Value: 1, Span: sp(0, 1)}
	tru := &BoolLit{Value: true, Span: sp(4, 8)}
	bin := &Binary{Op: BinaryOp{Kind: BinaryAdd, Span: sp(2, 3)}, Lhs: one, Rhs: tru}

	cases := []struct {
		name string
		e    Expr
		want source.Span
	}{
		{"int", one, sp(0, 1)},
		{"binary", bin, sp(0, 8)},
		{"paren", &Paren{X: bin, Span: sp(0, 9)}, sp(0, 8)},
		{"print", &Print{X: &Ident{Name: "x", Span: sp(6, 7)}, Span: sp(0, 5)}, sp(6, 7)},
		{"string", &StringLit{Value: "hi", Span: sp(3, 7)}, sp(3, 7)},
		{"nil", nil, source.Span{}},
	}
	for _, tc := range cases {
		if got := SpanOf(tc.e); got != tc.want {
			t.Fatalf("%s: SpanOf() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBinaryKindNames(t *testing.T) {
	if BinaryAnd.String() != "And" || BinaryAnd.Symbol() != "&&" {
		t.Fatalf("unexpected And spelling: %s %s", BinaryAnd, BinaryAnd.Symbol())
	}
	if BinaryDiv.Symbol() != "/" {
		t.Fatalf("unexpected Div symbol %q", BinaryDiv.Symbol())
	}
}
