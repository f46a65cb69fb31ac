// Package ast holds the syntax tree produced by the parser.
//
// Statements and expressions are sealed interfaces: only the types in this
// package implement them, so consumers switch over the concrete pointers and
// treat anything else as unreachable. Every leaf and every operator carries
// its own source span; composite spans are derived with SpanOf.
package ast
