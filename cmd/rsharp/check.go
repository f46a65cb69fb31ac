package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rsharp/internal/diagfmt"
	"rsharp/internal/driver"
)

var errDiagnostics = errors.New("diagnostics reported")

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.rsharp",
	Short: "Parse, bind and generate code for a file without writing output",
	Long: `Check runs a file through the parser, the binder and the code generator
and reports every diagnostic. It exits with a non-zero status when the file
is rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json)")
	checkCmd.Flags().Bool("emit-bound", false, "print the bound tree of an accepted file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	emitBound, err := cmd.Flags().GetBool("emit-bound")
	if err != nil {
		return fmt.Errorf("failed to get emit-bound flag: %w", err)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	sess := driver.NewSession(driver.Options{MaxDiagnostics: g.maxDiagnostics})
	res, err := sess.SubmitFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := os.Stderr
	if format == "json" {
		out = os.Stdout
	}
	if err := printDiagnostics(cmd, out, format, res.Bag, sess.FileSet()); err != nil {
		return err
	}
	if g.timings {
		printReport(os.Stderr, res.Timings)
	}
	if res.Failed() {
		return errDiagnostics
	}

	if emitBound {
		colored, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		if err := diagfmt.FormatBoundTree(os.Stdout, res.Bound, colored); err != nil {
			return err
		}
	}
	if !g.quiet && format != "json" {
		fmt.Fprintf(os.Stderr, "%s: ok\n", args[0])
	}
	return nil
}
