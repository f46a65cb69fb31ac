package ast

import "rsharp/internal/source"

// Expr is one of *IntLit, *BoolLit, *StringLit, *Ident, *Binary, *Paren, *Print.
type Expr interface {
	exprNode()
}

type IntLit struct {
	Value int32
	Span  source.Span
}

type BoolLit struct {
	Value bool
	Span  source.Span
}

// StringLit holds the unquoted text.
type StringLit struct {
	Value string
	Span  source.Span
}

type Ident struct {
	Name string
	Span source.Span
}

type Binary struct {
	Op  BinaryOp
	Lhs Expr
	Rhs Expr
}

// Paren is a parenthesized expression; Span covers both parentheses.
type Paren struct {
	X    Expr
	Span source.Span
}

// Print is `print X`; Span covers the keyword.
type Print struct {
	X    Expr
	Span source.Span
}

func (*IntLit) exprNode()    {}
func (*BoolLit) exprNode()   {}
func (*StringLit) exprNode() {}
func (*Ident) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Paren) exprNode()     {}
func (*Print) exprNode()     {}

// SpanOf derives the span diagnostics use for e: a leaf reports its own
// span, a binary runs from the left operand's start to the right operand's
// end, and parens and prints report the span of their inner expression.
func SpanOf(e Expr) source.Span {
	switch e := e.(type) {
	case *IntLit:
		return e.Span
	case *BoolLit:
		return e.Span
	case *StringLit:
		return e.Span
	case *Ident:
		return e.Span
	case *Binary:
		return SpanOf(e.Lhs).To(SpanOf(e.Rhs))
	case *Paren:
		return SpanOf(e.X)
	case *Print:
		return SpanOf(e.X)
	}
	return source.Span{}
}
