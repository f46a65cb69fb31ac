package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rsharp/internal/diag"
	"rsharp/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, caret     *color.Color
	gutter, note    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		caret:  color.New(color.FgRed, color.Bold),
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.caret, p.gutter, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes every diagnostic of bag as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line and a caret underline. Notes are
// printed the same way when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := writeDiagnostic(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	start, _ := resolve(fs, d.Primary)
	_, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(fs, d.Primary, opts.PathMode), start.Line, start.Col,
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message)
	if err != nil {
		return err
	}
	if err := writeSnippet(w, d.Primary, fs, p, "^"); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		ns, _ := resolve(fs, n.Span)
		if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
			displayPath(fs, n.Span, opts.PathMode), ns.Line, ns.Col, n.Msg); err != nil {
			return err
		}
		if err := writeSnippet(w, n.Span, fs, p, "-"); err != nil {
			return err
		}
	}
	return nil
}

func resolve(fs *source.FileSet, span source.Span) (source.LineCol, source.LineCol) {
	if fs == nil {
		return source.LineCol{}, source.LineCol{}
	}
	return fs.Resolve(span)
}

// writeSnippet prints the first line of span with an underline. Multi-line
// spans are underlined to the end of their first line.
func writeSnippet(w io.Writer, span source.Span, fs *source.FileSet, p palette, mark string) error {
	if fs == nil {
		return nil
	}
	f := fs.Get(span.File)
	if f == nil {
		return nil
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	lineNo := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(lineNo))

	col := clampCol(start.Col, line)
	stop := len(line)
	if end.Line == start.Line {
		stop = clampCol(end.Col, line)
	}
	prefixWidth := runewidth.StringWidth(expandTabs(line[:col]))
	markWidth := max(1, runewidth.StringWidth(expandTabs(line[col:max(col, stop)])))

	if _, err := fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(lineNo), p.gutter.Sprint("|"), expandTabs(line)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"),
		strings.Repeat(" ", prefixWidth), p.caret.Sprint(strings.Repeat(mark, markWidth)))
	return err
}

// clampCol converts a 1-based byte column into an index into line.
func clampCol(col uint32, line string) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(line))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
