package parser

import (
	"rsharp/internal/ast"
	"rsharp/internal/token"
)

// program = { stmt ";" } [ stmt ] EOF
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			return nil
		}
		prog.Stmts = append(prog.Stmts, stmt)

		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
		case token.EOF:
		default:
			p.unexpected(withOps(token.Semicolon, token.EOF)...)
			return nil
		}
	}
	return prog
}

// stmt = "let" IDENT "=" expr | expr
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	if !p.at(token.KwLet) {
		expr, ok := p.parseExprExpecting(stmtStart)
		if !ok {
			return nil, false
		}
		return &ast.ExprStmt{X: expr}, true
	}

	p.advance() // let
	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign); !ok {
		return nil, false
	}
	rhs, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.DeclareStmt{
		Name: &ast.Ident{Name: nameTok.Text, Span: nameTok.Span},
		Rhs:  rhs,
	}, true
}
