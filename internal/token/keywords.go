package token

var keywords = map[string]Kind{
	"let":   KwLet,
	"print": KwPrint,
	"true":  KwTrue,
	"false": KwFalse,
}

// LookupKeyword returns the keyword kind for ident.
// Keywords are case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
