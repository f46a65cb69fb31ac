package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rsharp/internal/diagfmt"
	"rsharp/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rsharp",
	Short: "Parse an rsharp source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "tree", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], g.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(cmd, os.Stderr, "pretty", result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Program == nil {
		return errors.New("parsing failed")
	}

	if format == "json" {
		return diagfmt.FormatASTJSON(os.Stdout, result.Program)
	}
	return diagfmt.FormatASTTree(os.Stdout, result.Program, result.File, result.FileSet)
}
