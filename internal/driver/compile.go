package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"rsharp/internal/trace"
)

// FileResult is the outcome for one file of CompileFiles. Err holds load
// errors and code generation faults; source errors are in Result.Bag.
type FileResult struct {
	Path    string
	Session *Session
	Result  *Result
	Err     error
}

func (r FileResult) Failed() bool {
	return r.Err != nil || r.Result.Failed()
}

// CompileFiles compiles each path in its own Session, at most jobs at a
// time, and returns results in input order. A failing file does not stop
// the others; only cancellation of ctx does.
func CompileFiles(ctx context.Context, paths []string, jobs int, opts Options) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "compile", trace.ParentID(ctx))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sess := NewSession(opts)
			res, err := sess.SubmitFile(gctx, path)
			results[i] = FileResult{Path: path, Session: sess, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
