package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BuildRequest configures output generation for a compilation.
type BuildRequest struct {
	CompileRequest
	OutputDir     string // defaults to the working directory
	OutputName    string // only honoured for a single input file
	Link          bool
	CC            string // defaults to clang
	PrintCommands bool
}

// Artifact is what one input file produced.
type Artifact struct {
	Source  string
	LLPath  string
	BinPath string // empty unless linked
	Module  string
}

// BuildResult captures build artefacts and timings.
type BuildResult struct {
	Compile   CompileResult
	Artifacts []Artifact
	Timings   Timings
}

// Build compiles the request, writes one .ll file per input and links them
// when asked.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if req == nil {
		return result, fmt.Errorf("missing build request")
	}
	compileRes, err := Compile(ctx, &req.CompileRequest)
	result.Compile = compileRes
	result.Timings = compileRes.Timings
	if err != nil {
		return result, err
	}

	outDir := req.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return result, fmt.Errorf("failed to create output dir: %w", err)
	}

	emitStart := time.Now()
	for _, f := range compileRes.Files {
		emit(req.Progress, Event{File: f.Path, Stage: StageEmit, Status: StatusWorking})
		stem := outputStem(f.Path, req.OutputName, len(compileRes.Files))
		art := Artifact{
			Source: f.Path,
			LLPath: filepath.Join(outDir, stem+".ll"),
			Module: f.Result.Module,
		}
		if err := os.WriteFile(art.LLPath, []byte(art.Module), 0o600); err != nil {
			err = fmt.Errorf("failed to write LLVM IR: %w", err)
			emit(req.Progress, Event{File: f.Path, Stage: StageEmit, Status: StatusError, Err: err})
			return result, err
		}
		result.Artifacts = append(result.Artifacts, art)
	}
	result.Timings.Set(StageEmit, time.Since(emitStart))

	if req.Link {
		linkStart := time.Now()
		tc, err := findToolchain(req.CC)
		if err != nil {
			emitStage(req.Progress, req.Files, StageLink, StatusError, err, 0)
			return result, err
		}
		for i := range result.Artifacts {
			art := &result.Artifacts[i]
			emit(req.Progress, Event{File: art.Source, Stage: StageLink, Status: StatusWorking})
			bin := strings.TrimSuffix(art.LLPath, ".ll")
			if err := tc.link(art.LLPath, bin, req.PrintCommands); err != nil {
				emit(req.Progress, Event{File: art.Source, Stage: StageLink, Status: StatusError, Err: err})
				return result, err
			}
			art.BinPath = bin
		}
		result.Timings.Set(StageLink, time.Since(linkStart))
	}

	for _, art := range result.Artifacts {
		emit(req.Progress, Event{File: art.Source, Status: StatusDone, Elapsed: result.Timings.Sum(Stages...)})
	}
	return result, nil
}

func outputStem(path, outputName string, files int) string {
	if outputName != "" && files == 1 {
		return strings.TrimSuffix(outputName, ".ll")
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
