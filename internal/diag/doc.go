// Package diag defines the diagnostic model shared by the parser and the binder.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string form
// (LEX/SYN/SEM prefixes), a short Message, the Primary span and optional
// Notes pointing at related source locations.
//
// Producers emit through a Reporter; BagReporter collects into a Bag, which
// supports sorting and deduplication. Rendering against source text lives in
// internal/diagfmt, never here.
//
// Code generation faults are not diagnostics: they are returned as errors by
// internal/backend/llvm.
package diag
