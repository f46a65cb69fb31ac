package sema

import (
	"strconv"

	"rsharp/internal/ast"
	"rsharp/internal/bound"
	"rsharp/internal/diag"
	"rsharp/internal/symbols"
	"rsharp/internal/trace"
)

// Options configure a Binder.
type Options struct {
	Tracer     trace.Tracer // nil means trace.Nop
	SymbolHint uint         // initial symbol table capacity
}

// Binder resolves names and checks types. Its symbol table outlives a single
// Bind call, so a REPL session can refer to earlier declarations.
// A Binder is not safe for concurrent use.
type Binder struct {
	table  *symbols.Table
	tracer trace.Tracer
}

func New(opts Options) *Binder {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Binder{
		table:  symbols.NewTable(opts.SymbolHint),
		tracer: tracer,
	}
}

// Bind binds prog statement by statement. Errors in expression statements
// and initializers are collected and binding continues; a duplicate
// declaration is reported and ends the call. When anything was reported the
// result is nil, the error is a *BindError, and every declaration made
// during the call is rolled back.
func (b *Binder) Bind(prog *ast.Program) (*bound.Program, error) {
	span := trace.Begin(b.tracer, trace.ScopePass, "bind", 0)
	mark := b.table.Len()

	pass := &bindPass{binder: b, span: span.ID()}
	out := pass.run(prog)

	if len(pass.sink.Items) > 0 {
		b.table.Truncate(mark)
		first := pass.sink.Items[0].Code.ID()
		span.WithExtra("error", first).
			WithExtra("diagnostics", strconv.Itoa(len(pass.sink.Items))).
			End("failed")
		return nil, &BindError{Diagnostics: pass.sink.Items}
	}
	span.WithExtra("stmts", strconv.Itoa(len(out.Stmts))).End("")
	return out, nil
}

// Names lists the declared variables in declaration order.
func (b *Binder) Names() []string {
	return b.table.Names()
}

// Lookup returns the value bound to name.
func (b *Binder) Lookup(name string) (bound.Expr, bool) {
	_, sym := b.table.Lookup(name)
	if sym == nil {
		return nil, false
	}
	return sym.Value, true
}

// bindPass is the state of one Bind call.
type bindPass struct {
	binder *Binder
	span   uint64
	sink   diag.SliceReporter
}

func (p *bindPass) run(prog *ast.Program) *bound.Program {
	out := &bound.Program{}
	if prog == nil {
		return out
	}
	for _, stmt := range prog.Stmts {
		bs, stop := p.bindStmt(stmt)
		if bs != nil {
			out.Stmts = append(out.Stmts, *bs)
		}
		if stop {
			break
		}
	}
	return out
}

// Mark is a point in the symbol table that Restore can return to.
type Mark int

func (b *Binder) Mark() Mark { return Mark(b.table.Len()) }

// Restore drops every declaration made after m. A caller uses it when a later
// stage rejects a program the binder accepted.
func (b *Binder) Restore(m Mark) {
	b.table.Truncate(int(m))
}
