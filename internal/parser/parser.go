package parser

import (
	"rsharp/internal/ast"
	"rsharp/internal/lexer"
	"rsharp/internal/source"
	"rsharp/internal/token"
)

// Parser holds the state for parsing one file.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	fail *Error // first error; parsing stops once it is set
}

// Parse turns file into a Program. The first syntax error stops parsing and
// is returned instead of a tree.
func Parse(file *source.File) (*ast.Program, *Error) {
	p := Parser{
		lx:   lexer.New(file, lexer.Options{}),
		file: file,
	}
	prog := p.parseProgram()
	if p.fail != nil {
		return nil, p.fail
	}
	return prog, nil
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

// expect consumes a token of kind k or records the error for the token found.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.unexpected(k)
	return token.Token{}, false
}

// unexpected records the normalized error for the current token given the
// set of kinds that would have been accepted.
func (p *Parser) unexpected(expected ...token.Kind) {
	if p.fail != nil {
		return
	}
	tok := p.peek()
	switch tok.Kind {
	case token.EOF:
		p.fail = &Error{
			Kind:     UnrecognizedEOF,
			Span:     source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1},
			Found:    tok,
			Expected: expected,
		}
	case token.Invalid:
		p.fail = &Error{
			Kind:     InvalidToken,
			Span:     tok.Span,
			Found:    tok,
			Expected: expected,
		}
	default:
		p.fail = &Error{
			Kind:     UnrecognizedToken,
			Span:     tok.Span,
			Found:    tok,
			Expected: expected,
		}
	}
}

// invalid records an InvalidToken error for a token the lexer accepted but
// whose value cannot be represented.
func (p *Parser) invalid(tok token.Token, detail string) {
	if p.fail != nil {
		return
	}
	p.fail = &Error{
		Kind:   InvalidToken,
		Span:   tok.Span,
		Found:  tok,
		Detail: detail,
	}
}
