package diag

import (
	"testing"

	"rsharp/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	b := NewBag(2)
	if b.HasErrors() {
		t.Fatalf("empty bag reports errors")
	}
	sp := source.Span{Start: 1, End: 2}
	if !b.Add(New(SevWarning, SemaInfo, sp, "w")) {
		t.Fatalf("first add dropped")
	}
	if b.HasErrors() {
		t.Fatalf("warning counted as error")
	}
	if !b.HasWarnings() {
		t.Fatalf("warning not seen")
	}
	b.Add(NewError(SemaUndefinedVariable, sp, "Variable is undefined"))
	if b.Add(NewError(SemaUndefinedVariable, sp, "again")) {
		t.Fatalf("add past limit accepted")
	}
	if b.Len() != 2 || !b.HasErrors() {
		t.Fatalf("unexpected bag state: len=%d errors=%v", b.Len(), b.HasErrors())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(SemaTypeMismatchInBinaryOp, source.Span{Start: 8, End: 16}, "late"))
	b.Add(NewError(SemaUndefinedVariable, source.Span{Start: 0, End: 1}, "early"))
	b.Add(NewError(SemaUndefinedVariable, source.Span{Start: 0, End: 1}, "early dup"))
	b.Sort()
	b.Dedup()
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Fatalf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestCodeIDs(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{SynUnrecognizedEOF, "SYN2001"},
		{SemaUndefinedVariable, "SEM3001"},
		{SemaNonLiteralPrintTarget, "SEM3004"},
		{LexUnknownChar, "LEX1001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Fatalf("%d.ID() = %q, want %q", tc.code, got, tc.want)
		}
	}
	if SemaDuplicateDeclaration.Title() != "Duplicate declaration" {
		t.Fatalf("unexpected title %q", SemaDuplicateDeclaration.Title())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	var sink SliceReporter
	rb := ReportError(&sink, SemaDuplicateDeclaration, source.Span{Start: 11, End: 21}, "Variable identifier is already taken").
		WithNote(source.Span{Start: 0, End: 10}, "previously declared here")
	rb.Emit()
	rb.Emit()
	if len(sink.Items) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(sink.Items))
	}
	if len(sink.Items[0].Notes) != 1 || sink.Items[0].Notes[0].Span.Start != 0 {
		t.Fatalf("note missing: %+v", sink.Items[0])
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 3, End: 4}
	r.Report(SemaUndefinedVariable, SevError, sp, "Variable is undefined", nil)
	r.Report(SemaUndefinedVariable, SevError, sp, "Variable is undefined", nil)
	r.Report(SemaUndefinedVariable, SevError, source.Span{Start: 5, End: 6}, "Variable is undefined", nil)
	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.rsharp", []byte("let x = 1;\nprint y;"))
	diags := []Diagnostic{
		NewError(SemaUndefinedVariable, source.Span{File: id, Start: 17, End: 18}, "Variable is undefined"),
		NewError(SynInvalidToken, source.Span{File: id, Start: 4, End: 5}, "Invalid Token."),
	}
	got := FormatGoldenDiagnostics(diags, fs, false)
	want := "error SYN2003 main.rsharp:1:5 Invalid Token.\nerror SEM3001 main.rsharp:2:7 Variable is undefined"
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}
