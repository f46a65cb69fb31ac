package format

import (
	"errors"
	"strings"

	"rsharp/internal/diag"
	"rsharp/internal/lexer"
	"rsharp/internal/parser"
	"rsharp/internal/source"
	"rsharp/internal/token"
)

type Options struct {
	DropComments bool
	// MaxBlankLines caps the empty lines kept between statements. Negative
	// values drop all of them; zero means one.
	MaxBlankLines int
}

func (o Options) withDefaults() Options {
	switch {
	case o.MaxBlankLines == 0:
		o.MaxBlankLines = 1
	case o.MaxBlankLines < 0:
		o.MaxBlankLines = 0
	}
	return o
}

type printer struct {
	w       *Writer
	opt     Options
	pending int // newlines seen since the last emitted token or comment
}

// FormatFile returns sf in canonical layout. Source that does not parse is
// returned untouched together with the *parser.Error.
func FormatFile(sf *source.File, opt Options) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	if _, perr := parser.Parse(sf); perr != nil {
		return sf.Content, perr
	}

	bag := diag.NewBag(1)
	toks := lexer.New(sf, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()
	if bag.HasErrors() {
		return sf.Content, errors.New("format: " + bag.Items()[0].Message)
	}

	p := printer{w: NewWriter(len(sf.Content)), opt: opt.withDefaults()}
	p.printTokens(toks)
	return p.w.Bytes(), nil
}

func (p *printer) printTokens(toks []token.Token) {
	prev := token.Invalid
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			if prev != token.Invalid && prev != token.Semicolon {
				p.w.WriteString(";")
			}
			p.trivia(tok.Leading)
			break
		}
		p.trivia(tok.Leading)
		switch {
		case prev == token.Invalid || prev == token.Semicolon:
			p.lineBreak()
		case p.w.AtLineStart():
		case needsSpace(prev, tok.Kind):
			p.w.Space()
		}
		p.w.WriteString(tok.Text)
		p.pending = 0
		prev = tok.Kind
	}
	p.w.Newline()
}

func (p *printer) trivia(leading []token.Trivia) {
	for _, tr := range leading {
		switch tr.Kind {
		case token.TriviaNewline:
			p.pending += strings.Count(tr.Text, "\n")
		case token.TriviaLineComment:
			if p.opt.DropComments {
				continue
			}
			if p.pending == 0 && !p.w.AtLineStart() {
				p.w.Space()
			} else {
				p.lineBreak()
			}
			p.w.WriteString(strings.TrimRight(tr.Text, " \t\r"))
			p.w.Newline()
			p.pending = 0
		}
	}
}

// lineBreak starts a new line, keeping up to MaxBlankLines of the blank
// lines seen in the source.
func (p *printer) lineBreak() {
	if p.w.Empty() {
		return
	}
	p.w.BlankLines(min(max(p.pending-1, 0), p.opt.MaxBlankLines))
}

func needsSpace(prev, cur token.Kind) bool {
	switch {
	case cur == token.Semicolon, cur == token.RParen:
		return false
	case prev == token.LParen:
		return false
	default:
		return true
	}
}
