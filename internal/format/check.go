package format

import (
	"fmt"
	"strconv"
	"strings"

	"rsharp/internal/ast"
	"rsharp/internal/parser"
	"rsharp/internal/source"
)

// CheckRoundTrip formats sf, re-parses the result and reports whether the
// syntax tree kept its shape.
func CheckRoundTrip(sf *source.File, opt Options) (ok bool, msg string) {
	orig, perr := parser.Parse(sf)
	if perr != nil {
		return false, "fmt-check: initial parse failed: " + perr.Message()
	}
	formatted, err := FormatFile(sf, opt)
	if err != nil {
		return false, "fmt-check: formatter failed: " + err.Error()
	}

	fs := source.NewFileSet()
	rebuilt := fs.Get(fs.AddVirtual(sf.Path, formatted))
	again, perr := parser.Parse(rebuilt)
	if perr != nil {
		return false, "fmt-check: reparse failed: " + perr.Message()
	}
	if a, b := Shape(orig), Shape(again); a != b {
		return false, fmt.Sprintf("fmt-check: tree changed after round-trip:\n  before %s\n  after  %s", a, b)
	}
	return true, "fmt-check: OK"
}

// Shape renders prog as a span-free s-expression, one statement per group.
func Shape(prog *ast.Program) string {
	if prog == nil {
		return "()"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, stmt := range prog.Stmts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s := stmt.(type) {
		case *ast.DeclareStmt:
			sb.WriteString("(let " + s.Name.Name + " ")
			writeShape(&sb, s.Rhs)
			sb.WriteByte(')')
		case *ast.ExprStmt:
			writeShape(&sb, s.X)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func writeShape(sb *strings.Builder, e ast.Expr) {
	switch e := e.(type) {
	case *ast.IntLit:
		sb.WriteString(strconv.FormatInt(int64(e.Value), 10))
	case *ast.BoolLit:
		sb.WriteString(strconv.FormatBool(e.Value))
	case *ast.StringLit:
		sb.WriteString(strconv.Quote(e.Value))
	case *ast.Ident:
		sb.WriteString(e.Name)
	case *ast.Binary:
		sb.WriteString("(" + e.Op.Kind.Symbol() + " ")
		writeShape(sb, e.Lhs)
		sb.WriteByte(' ')
		writeShape(sb, e.Rhs)
		sb.WriteByte(')')
	case *ast.Paren:
		sb.WriteString("(paren ")
		writeShape(sb, e.X)
		sb.WriteByte(')')
	case *ast.Print:
		sb.WriteString("(print ")
		writeShape(sb, e.X)
		sb.WriteByte(')')
	default:
		sb.WriteString("?")
	}
}
