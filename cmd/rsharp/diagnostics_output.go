package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rsharp/internal/diag"
	"rsharp/internal/diagfmt"
	"rsharp/internal/source"
)

// printDiagnostics writes bag to w in the given format. Nothing is written
// for an empty bag.
func printDiagnostics(cmd *cobra.Command, w io.Writer, format string, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || len(bag.Items()) == 0 {
		return nil
	}
	switch format {
	case "pretty", "":
		colored, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{Color: colored, ShowNotes: true})
	case "short":
		return diagfmt.Short(w, bag, fs, true)
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
