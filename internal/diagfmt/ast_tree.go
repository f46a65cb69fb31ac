package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"rsharp/internal/ast"
	"rsharp/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// write renders the children of n below prefix with ├─ / └─ connectors.
func (n *treeNode) write(w io.Writer, prefix string) error {
	for i, child := range n.children {
		last := i == len(n.children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label); err != nil {
			return err
		}
		if err := child.write(w, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

// FormatASTTree prints the syntax tree of one file.
func FormatASTTree(w io.Writer, prog *ast.Program, file *source.File, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	header := "Program"
	if file != nil {
		header = file.FormatPath("auto", fs.BaseDir())
	}
	root := &treeNode{label: header}
	for i, st := range prog.Stmts {
		root.children = append(root.children, stmtNode(st, i, fs))
	}
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	return root.write(w, "")
}

func stmtNode(st ast.Stmt, idx int, fs *source.FileSet) *treeNode {
	switch st := st.(type) {
	case *ast.ExprStmt:
		return &treeNode{
			label:    fmt.Sprintf("Stmt[%d]: Expr (span: %s)", idx, formatSpan(ast.SpanOf(st.X), fs)),
			children: []*treeNode{exprNode(st.X, fs)},
		}
	case *ast.DeclareStmt:
		return &treeNode{
			label: fmt.Sprintf("Stmt[%d]: Let (span: %s)", idx, formatSpan(st.Name.Span.Cover(ast.SpanOf(st.Rhs)), fs)),
			children: []*treeNode{
				{label: "Name: " + st.Name.Name},
				{label: "Value", children: []*treeNode{exprNode(st.Rhs, fs)}},
			},
		}
	}
	return &treeNode{label: fmt.Sprintf("Stmt[%d]: <unknown %T>", idx, st)}
}

func exprNode(e ast.Expr, fs *source.FileSet) *treeNode {
	at := func(kind, detail string) *treeNode {
		label := kind
		if detail != "" {
			label += " " + detail
		}
		return &treeNode{label: fmt.Sprintf("%s (span: %s)", label, formatSpan(ast.SpanOf(e), fs))}
	}
	switch e := e.(type) {
	case *ast.IntLit:
		return at("Int", strconv.Itoa(int(e.Value)))
	case *ast.BoolLit:
		return at("Bool", strconv.FormatBool(e.Value))
	case *ast.StringLit:
		return at("String", strconv.Quote(e.Value))
	case *ast.Ident:
		return at("Ident", e.Name)
	case *ast.Binary:
		n := at("Binary", e.Op.Kind.Symbol())
		n.children = []*treeNode{exprNode(e.Lhs, fs), exprNode(e.Rhs, fs)}
		return n
	case *ast.Paren:
		n := at("Paren", "")
		n.children = []*treeNode{exprNode(e.X, fs)}
		return n
	case *ast.Print:
		n := at("Print", "")
		n.children = []*treeNode{exprNode(e.X, fs)}
		return n
	case nil:
		return &treeNode{label: "<nil>"}
	}
	return &treeNode{label: fmt.Sprintf("<unknown %T>", e)}
}

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	out := make([]ASTNodeOutput, 0, len(prog.Stmts))
	for _, st := range prog.Stmts {
		switch st := st.(type) {
		case *ast.ExprStmt:
			out = append(out, ASTNodeOutput{Type: "Stmt", Kind: "Expr", Span: ast.SpanOf(st.X),
				Children: []ASTNodeOutput{exprJSON(st.X)}})
		case *ast.DeclareStmt:
			out = append(out, ASTNodeOutput{Type: "Stmt", Kind: "Let", Text: st.Name.Name,
				Span: st.Name.Span.Cover(ast.SpanOf(st.Rhs)), Children: []ASTNodeOutput{exprJSON(st.Rhs)}})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exprJSON(e ast.Expr) ASTNodeOutput {
	n := ASTNodeOutput{Type: "Expr", Span: ast.SpanOf(e)}
	switch e := e.(type) {
	case *ast.IntLit:
		n.Kind, n.Text = "Int", strconv.Itoa(int(e.Value))
	case *ast.BoolLit:
		n.Kind, n.Text = "Bool", strconv.FormatBool(e.Value)
	case *ast.StringLit:
		n.Kind, n.Text = "String", e.Value
	case *ast.Ident:
		n.Kind, n.Text = "Ident", e.Name
	case *ast.Binary:
		n.Kind, n.Text = "Binary", e.Op.Kind.Symbol()
		n.Children = []ASTNodeOutput{exprJSON(e.Lhs), exprJSON(e.Rhs)}
	case *ast.Paren:
		n.Kind = "Paren"
		n.Children = []ASTNodeOutput{exprJSON(e.X)}
	case *ast.Print:
		n.Kind = "Print"
		n.Children = []ASTNodeOutput{exprJSON(e.X)}
	}
	return n
}
