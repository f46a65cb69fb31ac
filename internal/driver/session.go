package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rsharp/internal/ast"
	"rsharp/internal/backend/llvm"
	"rsharp/internal/bound"
	"rsharp/internal/diag"
	"rsharp/internal/observ"
	"rsharp/internal/parser"
	"rsharp/internal/sema"
	"rsharp/internal/source"
	"rsharp/internal/trace"
)

// Options configure a Session.
type Options struct {
	MaxDiagnostics int
	BaseDir        string
	Tracer         trace.Tracer  // nil means the tracer from the Submit context
	Observer       PhaseObserver // may be nil
}

// Session carries binder and code generator state across submissions, so
// later inputs see the declarations of earlier ones and extend one main.
// A Session is not safe for concurrent use.
type Session struct {
	opts    Options
	files   *source.FileSet
	binder  *sema.Binder
	builder *llvm.ProgramBuilder
	log     SessionLog
}

// Result is the outcome of one submission. Bag is non-empty when the input
// was rejected; Module then holds the previous module text.
type Result struct {
	File    *source.File
	Bag     *diag.Bag
	Program *ast.Program
	Bound   *bound.Program
	Module  string
	Timings observ.Report
}

func (r *Result) Failed() bool { return r != nil && r.Bag.HasErrors() }

func NewSession(opts Options) *Session {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 100
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	files := source.NewFileSet()
	if opts.BaseDir != "" {
		files.SetBaseDir(opts.BaseDir)
	}
	return &Session{
		opts:    opts,
		files:   files,
		binder:  sema.New(sema.Options{Tracer: tracer}),
		builder: llvm.NewProgramBuilder(llvm.Options{Tracer: tracer}),
		log:     SessionLog{Schema: SessionLogSchema},
	}
}

func (s *Session) FileSet() *source.FileSet { return s.files }

// Names lists the variables declared so far.
func (s *Session) Names() []string { return s.binder.Names() }

// Module renders the current module without compiling anything new.
func (s *Session) Module() (string, error) { return s.builder.Module() }

// Log returns a copy of the accepted inputs.
func (s *Session) Log() SessionLog {
	return SessionLog{Schema: s.log.Schema, Inputs: append([]string(nil), s.log.Inputs...)}
}

// Submit compiles src as a new input named name.
func (s *Session) Submit(ctx context.Context, name string, src []byte) (*Result, error) {
	id := s.files.AddVirtual(name, src)
	return s.compile(ctx, s.files.Get(id))
}

// SubmitFile loads path from disk and compiles it.
func (s *Session) SubmitFile(ctx context.Context, path string) (*Result, error) {
	start := time.Now()
	s.observe(path, PhaseLoad, PhaseStart, 0, false)
	id, err := s.files.Load(path)
	s.observe(path, PhaseLoad, PhaseEnd, time.Since(start), err != nil)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s.compile(ctx, s.files.Get(id))
}

// compile runs parse, bind and generate. Parse and bind failures are
// reported through the Bag; a code generation fault is returned as the
// error. Either way the session state is unchanged by a failed input.
func (s *Session) compile(ctx context.Context, file *source.File) (*Result, error) {
	tracer := s.tracer(ctx)
	span := trace.Begin(tracer, trace.ScopeInput, file.Path, trace.ParentID(ctx))
	timer := observ.NewTimer()
	res := &Result{File: file, Bag: diag.NewBag(s.opts.MaxDiagnostics)}
	defer func() { res.Timings = timer.Report() }()

	var perr *parser.Error
	s.timed(timer, file.Path, PhaseParse, func() bool {
		res.Program, perr = parser.Parse(file)
		return perr == nil
	})
	if perr != nil {
		res.Bag.Add(perr.Diagnostic())
		res.Module, _ = s.builder.Module()
		span.WithExtra("error", perr.Code().ID()).End("parse failed")
		return res, nil
	}

	mark := s.binder.Mark()
	var berr error
	s.timed(timer, file.Path, PhaseBind, func() bool {
		res.Bound, berr = s.binder.Bind(res.Program)
		return berr == nil
	})
	if berr != nil {
		var be *sema.BindError
		if !errors.As(berr, &be) {
			span.WithExtra("error", berr.Error()).End("bind failed")
			return res, fmt.Errorf("bind %s: %w", file.Path, berr)
		}
		res.Bag.AddAll(be.Diagnostics)
		res.Module, _ = s.builder.Module()
		span.WithExtra("error", be.Diagnostics[0].Code.ID()).End("bind failed")
		return res, nil
	}

	var gerr error
	s.timed(timer, file.Path, PhaseGenerate, func() bool {
		res.Module, gerr = s.builder.Generate(res.Bound)
		return gerr == nil
	})
	if gerr != nil {
		s.binder.Restore(mark)
		span.WithExtra("error", gerr.Error()).End("generate failed")
		return res, fmt.Errorf("generate %s: %w", file.Path, gerr)
	}

	s.log.Inputs = append(s.log.Inputs, string(file.Content))
	span.End("")
	return res, nil
}

func (s *Session) tracer(ctx context.Context) trace.Tracer {
	if s.opts.Tracer != nil {
		return s.opts.Tracer
	}
	return trace.FromContext(ctx)
}

func (s *Session) timed(timer *observ.Timer, input, name string, fn func() bool) {
	s.observe(input, name, PhaseStart, 0, false)
	idx := timer.Begin(name)
	ok := fn()
	note := ""
	if !ok {
		note = "failed"
	}
	timer.End(idx, note)
	s.observe(input, name, PhaseEnd, timer.Phases()[idx].Dur, !ok)
}

func (s *Session) observe(input, name string, status PhaseStatus, elapsed time.Duration, failed bool) {
	if s.opts.Observer == nil {
		return
	}
	s.opts.Observer(PhaseEvent{Input: input, Name: name, Status: status, Elapsed: elapsed, Failed: failed})
}

// Replay submits every input of log in order. It stops at the first input
// that no longer compiles.
func (s *Session) Replay(ctx context.Context, log SessionLog) (*Result, error) {
	if log.Schema != SessionLogSchema {
		return nil, fmt.Errorf("session log schema %d, want %d", log.Schema, SessionLogSchema)
	}
	var last *Result
	for i, input := range log.Inputs {
		res, err := s.Submit(ctx, fmt.Sprintf("<replay %d>", i+1), []byte(input))
		if err != nil {
			return res, fmt.Errorf("replay input %d: %w", i+1, err)
		}
		if res.Failed() {
			return res, fmt.Errorf("replay input %d: %s", i+1, res.Bag.Items()[0].Message)
		}
		last = res
	}
	return last, nil
}
