package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1004

	// syntax: normalized parser failures
	SynInfo              Code = 2000
	SynUnrecognizedEOF   Code = 2001
	SynUnrecognizedToken Code = 2002
	SynInvalidToken      Code = 2003

	// semantic: binder
	SemaInfo                   Code = 3000
	SemaUndefinedVariable      Code = 3001
	SemaDuplicateDeclaration   Code = 3002
	SemaTypeMismatchInBinaryOp Code = 3003
	SemaNonLiteralPrintTarget  Code = 3004
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                "Unknown error",
		LexInfo:                    "Lexical information",
		LexUnknownChar:             "Unknown character",
		LexUnterminatedString:      "Unterminated string literal",
		LexBadNumber:               "Invalid number literal",
		SynInfo:                    "Syntax information",
		SynUnrecognizedEOF:         "Unexpected end of input",
		SynUnrecognizedToken:       "Unrecognized token",
		SynInvalidToken:            "Invalid token",
		SemaInfo:                   "Semantic information",
		SemaUndefinedVariable:      "Undefined variable",
		SemaDuplicateDeclaration:   "Duplicate declaration",
		SemaTypeMismatchInBinaryOp: "Type mismatch in binary operation",
		SemaNonLiteralPrintTarget:  "Print target is not a literal",
	}
)

// ID returns the stable textual identifier, e.g. "SEM3003".
func (c Code) ID() string {
	ic := int(c)
	switch {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	if title, ok := codeDescription[c]; ok {
		return title
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
