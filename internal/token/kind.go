package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwPrint represents the 'print' keyword.
	KwPrint // print
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents the integer literal token.
	IntLit
	// StringLit represents the string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||
	// Assign represents the assign operator token.
	Assign // =
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwLet:     "KwLet",
	KwPrint:   "KwPrint",
	KwTrue:    "KwTrue",
	KwFalse:   "KwFalse",
	IntLit:    "IntLit",
	StringLit: "StringLit",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	AndAnd:    "AndAnd",
	OrOr:      "OrOr",
	Assign:    "Assign",
	Semicolon: "Semicolon",
	LParen:    "LParen",
	RParen:    "RParen",
}

var kindLexemes = [...]string{
	EOF:       "end of file",
	Ident:     "identifier",
	KwLet:     "let",
	KwPrint:   "print",
	KwTrue:    "true",
	KwFalse:   "false",
	IntLit:    "integer",
	StringLit: "string",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	AndAnd:    "&&",
	OrOr:      "||",
	Assign:    "=",
	Semicolon: ";",
	LParen:    "(",
	RParen:    ")",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Lexeme returns the user-facing spelling used in "expected ..." notes.
func (k Kind) Lexeme() string {
	if int(k) < len(kindLexemes) && kindLexemes[k] != "" {
		return kindLexemes[k]
	}
	return k.String()
}
