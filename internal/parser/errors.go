package parser

import (
	"fmt"
	"strings"

	"rsharp/internal/diag"
	"rsharp/internal/source"
	"rsharp/internal/token"
)

type ErrorKind uint8

const (
	// UnrecognizedEOF: input ended where more tokens were required.
	UnrecognizedEOF ErrorKind = iota
	// UnrecognizedToken: a well-formed token that the grammar does not allow here.
	UnrecognizedToken
	// InvalidToken: a lexeme that is not a token of the language.
	InvalidToken
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedEOF:
		return "UnrecognizedEOF"
	case UnrecognizedToken:
		return "UnrecognizedToken"
	case InvalidToken:
		return "InvalidToken"
	}
	return "ErrorKind(?)"
}

// Error is a structured parse failure.
type Error struct {
	Kind     ErrorKind
	Span     source.Span
	Found    token.Token
	Expected []token.Kind
	Detail   string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message())
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, " expected %s", e.ExpectedList())
	}
	return b.String()
}

// Message returns the user-facing headline for the failure.
func (e *Error) Message() string {
	switch e.Kind {
	case UnrecognizedEOF:
		return "Bad End Of File."
	case UnrecognizedToken:
		return "Unrecognized Token."
	default:
		return "Invalid Token."
	}
}

// Code maps the failure kind onto the diagnostic code space.
func (e *Error) Code() diag.Code {
	switch e.Kind {
	case UnrecognizedEOF:
		return diag.SynUnrecognizedEOF
	case UnrecognizedToken:
		return diag.SynUnrecognizedToken
	default:
		return diag.SynInvalidToken
	}
}

// ExpectedList renders the expected set as `"a", "b"` in grammar order.
func (e *Error) ExpectedList() string {
	parts := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		parts[i] = fmt.Sprintf("%q", k.Lexeme())
	}
	return strings.Join(parts, ", ")
}

// Diagnostic normalizes the failure into the shape used for binding errors.
func (e *Error) Diagnostic() diag.Diagnostic {
	d := diag.NewError(e.Code(), e.Span, e.Message())
	if e.Detail != "" {
		d = d.WithNote(e.Span, e.Detail)
	}
	if len(e.Expected) > 0 {
		d = d.WithNote(e.Span, "expected one of "+e.ExpectedList())
	}
	return d
}
