package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rsharp/internal/buildpipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.rsharp...]",
	Short: "Compile rsharp files to LLVM IR and optionally link them",
	Long: `Build compiles each file in its own session and writes one .ll file per
input. Without arguments the entry point is taken from [build].main in the
nearest rsharp.toml.`,
	RunE: buildExecution,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output name for a single input")
	buildCmd.Flags().String("out-dir", "", "directory for generated files")
	buildCmd.Flags().Bool("emit-llvm", false, "print the generated module to stdout")
	buildCmd.Flags().Bool("link", false, "link the module into a native executable")
	buildCmd.Flags().String("cc", "", "C compiler used for linking (default clang)")
	buildCmd.Flags().Int("jobs", 0, "max parallel compilations (0=auto)")
	buildCmd.Flags().Bool("print-commands", false, "print toolchain commands")
	buildCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	outputName, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}
	emitLLVM, err := cmd.Flags().GetBool("emit-llvm")
	if err != nil {
		return err
	}
	link, err := cmd.Flags().GetBool("link")
	if err != nil {
		return err
	}
	cc, err := cmd.Flags().GetString("cc")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	printCommands, err := cmd.Flags().GetBool("print-commands")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	files := args
	baseDir := ""
	if len(files) == 0 {
		manifest, found, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !found {
			return errors.New(noManifestMessage)
		}
		mainPath, err := resolveMain(manifest)
		if err != nil {
			return err
		}
		files = []string{mainPath}
		baseDir = manifest.Root
		build := manifest.Config.Build
		if outputName == "" {
			outputName = build.Output
		}
		if outputName == "" {
			outputName = manifest.Config.Package.Name
		}
		if outDir == "" {
			outDir = manifest.Root
		}
		link = link || build.Link
		if cc == "" {
			cc = build.CC
		}
	}
	if outputName != "" && len(files) > 1 {
		return fmt.Errorf("-o requires a single input file, got %d", len(files))
	}

	req := buildpipeline.BuildRequest{
		CompileRequest: buildpipeline.CompileRequest{
			Files:          files,
			BaseDir:        baseDir,
			Jobs:           jobs,
			MaxDiagnostics: g.maxDiagnostics,
		},
		OutputDir:     outDir,
		OutputName:    outputName,
		Link:          link,
		CC:            cc,
		PrintCommands: printCommands,
	}

	var res buildpipeline.BuildResult
	if shouldUseTUI(uiModeValue) && !emitLLVM {
		res, err = runBuildWithUI(cmd.Context(), "rsharp build", files, &req)
	} else {
		res, err = buildpipeline.Build(cmd.Context(), &req)
	}
	if perr := reportFileResults(cmd, res.Compile); perr != nil {
		return perr
	}
	if err != nil {
		if g.timings {
			printStageTimings(os.Stderr, res.Timings, false)
		}
		return err
	}

	if emitLLVM {
		for _, art := range res.Artifacts {
			if _, err := fmt.Fprint(os.Stdout, art.Module); err != nil {
				return err
			}
		}
	}
	if g.timings {
		printStageTimings(os.Stderr, res.Timings, true)
	}
	if !g.quiet {
		for _, art := range res.Artifacts {
			path := art.LLPath
			if art.BinPath != "" {
				path = art.BinPath
			}
			fmt.Fprintf(os.Stderr, "built %s\n", formatPathForOutput(baseDir, path))
		}
	}
	return nil
}

// reportFileResults prints the diagnostics and faults of every file.
func reportFileResults(cmd *cobra.Command, res buildpipeline.CompileResult) error {
	for _, f := range res.Files {
		if f.Result != nil {
			if err := printDiagnostics(cmd, os.Stderr, "pretty", f.Result.Bag, f.Session.FileSet()); err != nil {
				return err
			}
		}
		if f.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", f.Path, f.Err)
		}
	}
	return nil
}

func formatPathForOutput(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
