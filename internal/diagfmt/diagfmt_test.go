package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rsharp/internal/bound"
	"rsharp/internal/diag"
	"rsharp/internal/source"
	"rsharp/internal/types"
)

func fixture(t *testing.T, src string, start, end uint32) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.rsharp", []byte(src))
	bag := diag.NewBag(10)
	d := diag.NewError(diag.SemaTypeMismatchInBinaryOp,
		source.Span{File: id, Start: start, End: end},
		"Cannot perform 'add' between Int and Bool.").
		WithNote(source.Span{File: id, Start: 0, End: 3}, "declared here")
	bag.Add(d)
	return bag, fs
}

func TestPrettyCaretUnderline(t *testing.T) {
	bag, fs := fixture(t, "let\nx = 1 + true;\n", 8, 16)
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	want := "main.rsharp:2:5: ERROR SEM3003: Cannot perform 'add' between Int and Bool.\n" +
		" 2 | x = 1 + true;\n" +
		"   |     ^^^^^^^^\n" +
		"  note: main.rsharp:1:1: declared here\n" +
		" 1 | let\n" +
		"   | ---\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	// each CJK rune is three bytes and two cells wide
	src := `"世界" + 1;`
	bag, fs := fixture(t, src, 0, uint32(len(src)-1))
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if got, want := strings.Count(lines[2], "^"), 10; got != want {
		t.Fatalf("underline width = %d, want %d (%q)", got, want, lines[2])
	}
}

func TestShort(t *testing.T) {
	bag, fs := fixture(t, "1 + true;", 0, 8)
	var buf bytes.Buffer
	if err := Short(&buf, bag, fs, false); err != nil {
		t.Fatalf("short: %v", err)
	}
	want := "error SEM3003 main.rsharp:1:1 Cannot perform 'add' between Int and Bool.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestJSON(t *testing.T) {
	bag, fs := fixture(t, "1 + true;", 0, 8)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("unexpected output %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "SEM3003" || d.Severity != "ERROR" || d.Location.EndByte != 8 || d.Location.EndCol != 9 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "declared here" {
		t.Fatalf("notes = %+v", d.Notes)
	}
}

func TestJSONMax(t *testing.T) {
	bag, fs := fixture(t, "1 + true;", 0, 8)
	bag.Add(diag.NewError(diag.SemaUndefinedVariable, source.Span{}, "Variable is undefined"))
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count=%d len=%d", out.Count, len(out.Diagnostics))
	}
}

func TestFormatBoundTree(t *testing.T) {
	sum := &bound.Binary{Op: types.OpAdd, Lhs: &bound.Int{Value: 2}, Rhs: &bound.Int{Value: 3}, Type: types.Int}
	prog := &bound.Program{Stmts: []bound.Statement{
		{Expr: &bound.Declaration{Name: "x", Type: types.Int, Rhs: sum}},
	}}
	var buf bytes.Buffer
	if err := FormatBoundTree(&buf, prog, false); err != nil {
		t.Fatalf("tree: %v", err)
	}
	want := "└───BoundDeclaration Int\n" +
		"    x\n" +
		"    └───BinaryOp Add : Int\n" +
		"        ├───Int 2\n" +
		"        └───Int 3\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}
