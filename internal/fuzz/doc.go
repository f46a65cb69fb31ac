// Package fuzztests holds Go fuzz harnesses for the rsharp pipeline. They
// feed arbitrary bytes through the lexer, the parser and a full session
// and fail on panics, hangs or inconsistent session state.
package fuzztests
