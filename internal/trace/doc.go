// Package trace is the structured event log of the compiler.
//
// Phases open spans (Begin/End) and emit instant events (Point) against a
// Tracer carried in the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "bind", trace.ParentID(ctx))
//	defer span.End("")
//
// Level filters by Scope: phase keeps driver and pass events, detail adds
// per-input events, debug adds node events. StreamTracer writes text or
// NDJSON as events arrive; RingTracer keeps the last N in memory for dumps
// and tests.
package trace
