package llvm

import (
	"maps"
	"slices"
	"strconv"

	"rsharp/internal/bound"
	"rsharp/internal/trace"
)

// Options configure a ProgramBuilder.
type Options struct {
	Tracer trace.Tracer // nil means trace.Nop
}

// ProgramBuilder owns the instruction streams of one growing main function.
// Successive Generate calls append to it. Not safe for concurrent use.
type ProgramBuilder struct {
	globals []Instruction
	main    []Instruction

	includePrintf    bool
	includeFormatNum bool
	declared         map[string]struct{}

	tracer trace.Tracer
}

func NewProgramBuilder(opts Options) *ProgramBuilder {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	return &ProgramBuilder{
		declared: make(map[string]struct{}),
		tracer:   tracer,
	}
}

type snapshot struct {
	globals          []Instruction
	main             []Instruction
	includePrintf    bool
	includeFormatNum bool
	declared         map[string]struct{}
}

func (b *ProgramBuilder) save() snapshot {
	return snapshot{
		globals:          slices.Clone(b.globals),
		main:             slices.Clone(b.main),
		includePrintf:    b.includePrintf,
		includeFormatNum: b.includeFormatNum,
		declared:         maps.Clone(b.declared),
	}
}

func (b *ProgramBuilder) restore(s snapshot) {
	b.globals = s.globals
	b.main = s.main
	b.includePrintf = s.includePrintf
	b.includeFormatNum = s.includeFormatNum
	b.declared = s.declared
}

// Generate lowers prog into the streams and returns the full module text.
// On a fault the streams are left exactly as they were before the call.
func (b *ProgramBuilder) Generate(prog *bound.Program) (string, error) {
	span := trace.Begin(b.tracer, trace.ScopePass, "generate", 0)
	snap := b.save()

	text, err := b.generate(prog, span.ID())
	if err != nil {
		b.restore(snap)
		span.WithExtra("error", err.Error()).End("failed")
		return "", err
	}
	span.WithExtra("main", strconv.Itoa(len(b.main))).End("")
	return text, nil
}

func (b *ProgramBuilder) generate(prog *bound.Program, parent uint64) (string, error) {
	if prog == nil {
		return "", invariant("nil program")
	}
	if n := len(b.main); n > 0 {
		if _, ok := b.main[n-1].(ReturnOK); ok {
			b.main = b.main[:n-1]
		}
	}
	for _, st := range prog.Stmts {
		if err := b.emitStmt(st.Expr, parent); err != nil {
			return "", err
		}
	}
	b.main = append(b.main, ReturnOK{})
	return Render(b.globals, b.main)
}

func (b *ProgramBuilder) emitStmt(e bound.Expr, parent uint64) error {
	// A bare name at statement level binds to its declaration again. The
	// binder rejects real redeclarations, so a seen name here is always such
	// a reference and emits nothing.
	if d, ok := e.(*bound.Declaration); ok {
		if _, seen := b.declared[d.Name]; seen {
			trace.Point(b.tracer, trace.ScopeNode, "reference", parent, d.Name)
			return nil
		}
	}

	st, err := lowerStmt(e)
	if err != nil {
		return err
	}
	switch st := st.(type) {
	case *Print:
		b.includePrint(st.Type)
		operand, err := operandText(st.X)
		if err != nil {
			return err
		}
		b.main = append(b.main, &PrintNumber{Operand: operand})
		trace.Point(b.tracer, trace.ScopeNode, "print", parent, operand)
	case *Variable:
		if st.Type.Kind != KindI32 {
			return notSupported("%s local %%%s", st.Type, st.Name)
		}
		value, err := initializerText(st.Init)
		if err != nil {
			return err
		}
		b.main = append(b.main, &LocalVariableDecl{Name: st.Name, Type: st.Type, Value: value})
		b.declared[st.Name] = struct{}{}
		trace.Point(b.tracer, trace.ScopeNode, "local", parent, st.Name)
	case I32Literal, *Addition:
		return notSupported("value used as a statement")
	default:
		return invariant("unknown statement %T", st)
	}
	return nil
}

// includePrint declares printf and the decimal format once per builder.
func (b *ProgramBuilder) includePrint(t Type) {
	if !b.includePrintf {
		b.globals = append(b.globals, printfDecl())
		b.includePrintf = true
	}
	if t.Kind == KindI32 && !b.includeFormatNum {
		b.globals = append(b.globals, formatNumDecl())
		b.includeFormatNum = true
	}
}

// Module renders the current streams without lowering anything.
func (b *ProgramBuilder) Module() (string, error) {
	return Render(b.globals, b.main)
}

// Globals returns a copy of the global stream.
func (b *ProgramBuilder) Globals() []Instruction {
	return slices.Clone(b.globals)
}

// Main returns a copy of the main stream.
func (b *ProgramBuilder) Main() []Instruction {
	return slices.Clone(b.main)
}
