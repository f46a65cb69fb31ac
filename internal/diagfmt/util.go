package diagfmt

import (
	"fmt"

	"rsharp/internal/source"
)

// formatSpan renders "line:col-line:col", or "span(start-end)" without a FileSet.
func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && fs.Get(span.File) != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}

func displayPath(fs *source.FileSet, span source.Span, mode PathMode) string {
	if fs == nil {
		return "<unknown>"
	}
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>"
	}
	return f.FormatPath(mode.String(), fs.BaseDir())
}
