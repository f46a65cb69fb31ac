package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rsharp/internal/diag"
	"rsharp/internal/format"
	"rsharp/internal/parser"
	"rsharp/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.rsharp...",
	Short: "Rewrite rsharp files in canonical layout",
	Long: `Fmt prints each file in canonical layout. With --write the files are
rewritten in place; with --check nothing is written and the command fails
when a file is not already formatted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite files in place")
	fmtCmd.Flags().Bool("check", false, "fail if any file is not formatted")
	fmtCmd.Flags().Bool("drop-comments", false, "remove line comments")
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	dropComments, err := cmd.Flags().GetBool("drop-comments")
	if err != nil {
		return fmt.Errorf("failed to get drop-comments flag: %w", err)
	}
	if write && check {
		return errors.New("--write and --check are mutually exclusive")
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	opts := format.Options{DropComments: dropComments}
	fs := source.NewFileSet()
	unformatted := 0
	for _, path := range args {
		id, err := fs.Load(path)
		if err != nil {
			return err
		}
		file := fs.Get(id)
		out, err := format.FormatFile(file, opts)
		if err != nil {
			var perr *parser.Error
			if errors.As(err, &perr) {
				bag := diag.NewBag(g.maxDiagnostics)
				bag.Add(perr.Diagnostic())
				if derr := printDiagnostics(cmd, os.Stderr, "pretty", bag, fs); derr != nil {
					return derr
				}
			}
			return fmt.Errorf("%s: %w", path, err)
		}

		switch {
		case check:
			if !bytes.Equal(out, file.Content) {
				unformatted++
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
		case write:
			if bytes.Equal(out, file.Content) {
				continue
			}
			if err := os.WriteFile(path, out, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			if !g.quiet {
				fmt.Fprintf(os.Stderr, "formatted %s\n", path)
			}
		default:
			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return err
			}
		}
	}
	if unformatted > 0 {
		return fmt.Errorf("%d file(s) need formatting", unformatted)
	}
	return nil
}
