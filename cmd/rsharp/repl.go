package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rsharp/internal/diagfmt"
	"rsharp/internal/driver"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Compile rsharp input line by line",
	Long: `Repl reads one input per line and prints the module after each accepted
input. Declarations persist across lines. An empty line or end of input
exits. With --session the accepted inputs are replayed at start and saved
at exit.`,
	Args: cobra.NoArgs,
	RunE: runReplCommand,
}

func init() {
	replCmd.Flags().String("session", "", "session log to replay and update")
	replCmd.Flags().Bool("emit-bound", false, "print the bound tree of each accepted input")
}

type replOptions struct {
	emitBound bool
	color     bool
	prompt    string
	timings   bool
}

func runReplCommand(cmd *cobra.Command, args []string) error {
	sessionPath, err := cmd.Flags().GetString("session")
	if err != nil {
		return fmt.Errorf("failed to get session flag: %w", err)
	}
	emitBound, err := cmd.Flags().GetBool("emit-bound")
	if err != nil {
		return fmt.Errorf("failed to get emit-bound flag: %w", err)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	colored, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sess := driver.NewSession(driver.Options{MaxDiagnostics: g.maxDiagnostics})
	if sessionPath != "" {
		log, err := driver.LoadSessionLog(sessionPath)
		if err != nil {
			return err
		}
		if len(log.Inputs) > 0 {
			if _, err := sess.Replay(ctx, log); err != nil {
				return fmt.Errorf("%s: %w", sessionPath, err)
			}
			if !g.quiet {
				fmt.Fprintf(os.Stderr, "replayed %d inputs from %s\n", len(log.Inputs), sessionPath)
			}
		}
	}

	opts := replOptions{emitBound: emitBound, color: colored, timings: g.timings}
	if !g.quiet && isTerminal(os.Stdin) {
		opts.prompt = "> "
	}
	replErr := runREPL(ctx, sess, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)

	if sessionPath != "" {
		if err := driver.SaveSessionLog(sessionPath, sess.Log()); err != nil {
			return err
		}
	}
	return replErr
}

// runREPL submits each line of in to sess. Rejected inputs are reported on
// errOut and leave the session unchanged.
func runREPL(ctx context.Context, sess *driver.Session, in io.Reader, out, errOut io.Writer, opts replOptions) error {
	scanner := bufio.NewScanner(in)
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.prompt != "" {
			fmt.Fprint(errOut, opts.prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			return nil
		}

		res, err := sess.Submit(ctx, fmt.Sprintf("<repl %d>", n), []byte(line))
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if res.Failed() {
			popts := diagfmt.PrettyOpts{Color: opts.color, ShowNotes: true}
			if err := diagfmt.Pretty(errOut, res.Bag, sess.FileSet(), popts); err != nil {
				return err
			}
			continue
		}
		if opts.emitBound {
			if err := diagfmt.FormatBoundTree(out, res.Bound, opts.color); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(out, res.Module); err != nil {
			return err
		}
		if opts.timings {
			printReport(errOut, res.Timings)
		}
	}
}
