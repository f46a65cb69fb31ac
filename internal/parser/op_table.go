package parser

import (
	"rsharp/internal/ast"
	"rsharp/internal/token"
)

// Binary operator precedence; higher binds tighter.
const (
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precAdditive       = 3 // + -
	precMultiplicative = 4 // * /
)

// binaryOps lists every binary operator token, lowest precedence first.
var binaryOps = []token.Kind{
	token.OrOr, token.AndAnd, token.Plus, token.Minus, token.Star, token.Slash,
}

// primaryStart is the set of tokens that can begin an operand.
var primaryStart = []token.Kind{
	token.IntLit, token.KwTrue, token.KwFalse, token.StringLit, token.Ident, token.LParen,
}

// exprStart adds print, which is only allowed at the head of an expression.
var exprStart = append([]token.Kind{token.KwPrint}, primaryStart...)

// stmtStart adds let, which is only allowed at the head of a statement.
var stmtStart = append([]token.Kind{token.KwLet}, exprStart...)

func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.OrOr:
		return precLogicalOr
	case token.AndAnd:
		return precLogicalAnd
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash:
		return precMultiplicative
	default:
		return -1
	}
}

func tokenKindToBinaryOp(kind token.Kind) ast.BinaryKind {
	switch kind {
	case token.Plus:
		return ast.BinaryAdd
	case token.Minus:
		return ast.BinarySub
	case token.Star:
		return ast.BinaryMul
	case token.Slash:
		return ast.BinaryDiv
	case token.AndAnd:
		return ast.BinaryAnd
	default:
		return ast.BinaryOr
	}
}

// withOps returns base followed by every binary operator.
func withOps(base ...token.Kind) []token.Kind {
	out := make([]token.Kind, 0, len(base)+len(binaryOps))
	out = append(out, base...)
	return append(out, binaryOps...)
}
