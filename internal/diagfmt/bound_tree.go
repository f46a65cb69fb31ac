package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"rsharp/internal/bound"
)

// FormatBoundTree prints each bound statement as a tree:
//
//	└───BoundDeclaration Int
//	    x
//	    └───BinaryOp Add : Int
//	        ├───Int 2
//	        └───Int 3
func FormatBoundTree(w io.Writer, prog *bound.Program, useColor bool) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	node := color.New(color.FgGreen)
	leaf := color.New(color.FgRed)
	if useColor {
		node.EnableColor()
		leaf.EnableColor()
	} else {
		node.DisableColor()
		leaf.DisableColor()
	}
	bt := &boundTree{w: w, node: node, leaf: leaf}
	for _, st := range prog.Stmts {
		bt.expr(st.Expr, "", true)
	}
	return bt.err
}

type boundTree struct {
	w          io.Writer
	node, leaf *color.Color
	err        error
}

func (t *boundTree) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *boundTree) expr(e bound.Expr, indent string, last bool) {
	marker := "├───"
	child := indent + "│   "
	if last {
		marker = "└───"
		child = indent + "    "
	}
	t.printf("%s%s", indent, marker)

	switch e := e.(type) {
	case *bound.Int:
		t.printf("%s %s\n", t.node.Sprint("Int"), t.leaf.Sprint(strconv.Itoa(int(e.Value))))
	case *bound.Bool:
		t.printf("%s %s\n", t.node.Sprint("Bool"), t.leaf.Sprint(strconv.FormatBool(e.Value)))
	case *bound.String:
		t.printf("%s %s\n", t.node.Sprint("String"), t.leaf.Sprint(strconv.Quote(e.Value)))
	case *bound.Binary:
		t.printf("%s %s : %s\n", t.node.Sprint("BinaryOp"), e.Op, e.Type)
		t.expr(e.Lhs, child, false)
		t.expr(e.Rhs, child, true)
	case *bound.Paren:
		t.printf("%s\n", t.node.Sprint("ParenthesizedExpression"))
		t.expr(e.X, child, true)
	case *bound.Print:
		t.printf("%s %s\n", t.node.Sprint("Print"), e.Type)
		t.expr(e.X, child, true)
	case *bound.Declaration:
		t.printf("%s %s\n", t.node.Sprint("BoundDeclaration"), e.Type)
		t.printf("%s%s\n", child, t.leaf.Sprint(e.Name))
		t.expr(e.Rhs, child, true)
	case nil:
		t.printf("<nil>\n")
	default:
		t.printf("<unknown %T>\n", e)
	}
}
