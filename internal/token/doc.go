// Package token defines lexical token kinds and trivia for the rsharp lexer.
// Invariants:
//   - Token.Text is the original source slice, except for string literals,
//     whose Text is NFC-normalized.
//   - Token.Span covers the lexeme exactly (Start..End).
//   - Comments and whitespace are attached to the following token as
//     leading Trivia and never appear in the main token stream.
//   - true/false are keywords; the parser turns them into boolean literals.
package token
