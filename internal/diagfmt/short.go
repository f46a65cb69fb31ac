package diagfmt

import (
	"io"

	"rsharp/internal/diag"
	"rsharp/internal/source"
)

// Short writes one line per diagnostic, sorted by position.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes))
	return err
}
