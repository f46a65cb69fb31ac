package parser

import (
	"strconv"

	"rsharp/internal/ast"
	"rsharp/internal/token"

	"fortio.org/safecast"
)

// expr = "print" expr | binary
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseExprExpecting(exprStart)
}

// parseExprExpecting reports expected as the accepted set when the
// expression cannot even start.
func (p *Parser) parseExprExpecting(expected []token.Kind) (ast.Expr, bool) {
	if p.at(token.KwPrint) {
		kw := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.Print{X: inner, Span: kw.Span}, true
	}
	return p.parseBinary(precLogicalOr, expected)
}

// parseBinary is precedence climbing over left-associative operators.
func (p *Parser) parseBinary(minPrec int, expected []token.Kind) (ast.Expr, bool) {
	lhs, ok := p.parsePrimary(expected)
	if !ok {
		return nil, false
	}
	for {
		opTok := p.peek()
		prec := binaryPrec(opTok.Kind)
		if prec < minPrec {
			return lhs, true
		}
		p.advance()
		rhs, ok := p.parseBinary(prec+1, primaryStart)
		if !ok {
			return nil, false
		}
		lhs = &ast.Binary{
			Op:  ast.BinaryOp{Kind: tokenKindToBinaryOp(opTok.Kind), Span: opTok.Span},
			Lhs: lhs,
			Rhs: rhs,
		}
	}
}

// primary = INT | "true" | "false" | STRING | IDENT | "(" expr ")"
func (p *Parser) parsePrimary(expected []token.Kind) (ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return p.intLiteral(tok)
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.BoolLit{Value: tok.Kind == token.KwTrue, Span: tok.Span}, true
	case token.StringLit:
		p.advance()
		value, err := strconv.Unquote(tok.Text)
		if err != nil {
			p.invalid(tok, "invalid escape sequence in string literal")
			return nil, false
		}
		return &ast.StringLit{Value: value, Span: tok.Span}, true
	case token.Ident:
		p.advance()
		return &ast.Ident{Name: tok.Text, Span: tok.Span}, true
	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if !p.at(token.RParen) {
			p.unexpected(withOps(token.RParen)...)
			return nil, false
		}
		closing := p.advance()
		return &ast.Paren{X: inner, Span: open.Span.Cover(closing.Span)}, true
	default:
		p.unexpected(expected...)
		return nil, false
	}
}

func (p *Parser) intLiteral(tok token.Token) (ast.Expr, bool) {
	wide, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		p.invalid(tok, "integer literal out of range")
		return nil, false
	}
	value, err := safecast.Conv[int32](wide)
	if err != nil {
		p.invalid(tok, "integer literal out of range")
		return nil, false
	}
	return &ast.IntLit{Value: value, Span: tok.Span}, true
}
