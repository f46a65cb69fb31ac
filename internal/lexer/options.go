package lexer

import (
	"rsharp/internal/diag"
	"rsharp/internal/source"
)

type Options struct {
	Reporter diag.Reporter // may be nil; errors still yield token.Invalid
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
