// Package format rewrites rsharp source into its canonical layout: one
// statement per line, single spaces around operators, a terminating
// semicolon on every statement. Comments and single blank lines between
// statements survive.
package format
