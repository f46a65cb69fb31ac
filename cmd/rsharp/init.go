package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const defaultMainFile = "main" + sourceExtension

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new rsharp project",
	Long: `Initialize a new rsharp project by creating a project manifest (rsharp.toml)
and an entry point (main.rsharp). If [path|name] is omitted, initializes the
current directory. A non-existing name creates the directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	arg := "."
	if len(args) == 1 {
		arg = args[0]
	}
	target, err := filepath.Abs(arg)
	if err != nil {
		return err
	}
	createdMain, err := initProject(target)
	if err != nil {
		return err
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized rsharp project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", manifestName)
	if createdMain {
		fmt.Fprintf(out, "  - %s\n", defaultMainFile)
	} else {
		fmt.Fprintf(out, "  - %s (existing)\n", defaultMainFile)
	}
	return nil
}

// initProject writes the manifest and, unless present, the entry file into
// target. It refuses to overwrite an existing manifest.
func initProject(target string) (createdMain bool, err error) {
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return false, fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return false, fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "rsharp-project"
	}

	manifestPath := filepath.Join(target, manifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return false, fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), 0o600); err != nil {
		return false, fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, defaultMainFile)
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainSource), 0o600); err != nil {
			return false, fmt.Errorf("failed to write %s: %w", defaultMainFile, err)
		}
		createdMain = true
	}
	return createdMain, nil
}

func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# rsharp project manifest
[package]
name = %q
version = "0.1.0"

[build]
main = %q
`, name, defaultMainFile)
}

const defaultMainSource = `// rsharp entry point
let answer = 40 + 2;
print answer;
`
