// Package buildpipeline turns source files into LLVM IR files and, when a
// toolchain is available, native executables.
package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rsharp/internal/driver"
)

// ErrDiagnostics is returned when at least one file was rejected with
// diagnostics. The per-file results carry the details.
var ErrDiagnostics = errors.New("compilation failed")

// CompileRequest selects the files to compile.
type CompileRequest struct {
	Files          []string
	BaseDir        string
	Jobs           int
	MaxDiagnostics int
	Progress       ProgressSink
}

type CompileResult struct {
	Files   []driver.FileResult
	Timings Timings
}

// Failed counts the files that did not produce a module.
func (r CompileResult) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Failed() {
			n++
		}
	}
	return n
}

var phaseStages = map[string]Stage{
	driver.PhaseLoad:     StageParse,
	driver.PhaseParse:    StageParse,
	driver.PhaseBind:     StageBind,
	driver.PhaseGenerate: StageGenerate,
}

// Compile runs every file through its own session in parallel.
func Compile(ctx context.Context, req *CompileRequest) (CompileResult, error) {
	var result CompileResult
	if req == nil {
		return result, fmt.Errorf("missing compile request")
	}
	if len(req.Files) == 0 {
		return result, fmt.Errorf("no input files")
	}
	emitQueued(req.Progress, req.Files)

	opts := driver.Options{
		MaxDiagnostics: req.MaxDiagnostics,
		BaseDir:        req.BaseDir,
		Observer: func(ev driver.PhaseEvent) {
			stage, ok := phaseStages[ev.Name]
			if !ok || ev.Status != driver.PhaseStart {
				return
			}
			emit(req.Progress, Event{File: ev.Input, Stage: stage, Status: StatusWorking})
		},
	}
	start := time.Now()
	files, err := driver.CompileFiles(ctx, req.Files, req.Jobs, opts)
	result.Files = files
	if err != nil {
		emitStage(req.Progress, nil, StageGenerate, StatusError, err, time.Since(start))
		return result, err
	}

	for _, f := range files {
		if f.Result != nil {
			for _, p := range f.Result.Timings.Phases {
				if stage, ok := phaseStages[p.Name]; ok {
					result.Timings.Add(stage, time.Duration(p.DurationMS*float64(time.Millisecond)))
				}
			}
		}
		if f.Failed() {
			emit(req.Progress, Event{File: f.Path, Stage: failedStage(f), Status: StatusError, Err: fileError(f)})
		}
	}
	if result.Failed() > 0 {
		return result, fmt.Errorf("%w: %d of %d files", ErrDiagnostics, result.Failed(), len(files))
	}
	return result, nil
}

func failedStage(f driver.FileResult) Stage {
	if f.Err != nil || f.Result == nil {
		if f.Result != nil && f.Result.Bound != nil {
			return StageGenerate
		}
		return StageParse
	}
	if f.Result.Program == nil {
		return StageParse
	}
	return StageBind
}

func fileError(f driver.FileResult) error {
	if f.Err != nil {
		return f.Err
	}
	items := f.Result.Bag.Items()
	if len(items) == 0 {
		return ErrDiagnostics
	}
	return fmt.Errorf("%s: %s", items[0].Code.ID(), items[0].Message)
}
