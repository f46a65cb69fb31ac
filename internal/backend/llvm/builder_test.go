package llvm

import (
	"errors"
	"strings"
	"testing"

	"rsharp/internal/bound"
	"rsharp/internal/types"
)

const printCall = "call i32 (i8*, ...) @printf(i8* getelementptr inbounds ([3 x i8], [3 x i8]* @format_num, i32 0, i32 0), i32 "

func prog(exprs ...bound.Expr) *bound.Program {
	p := &bound.Program{}
	for _, e := range exprs {
		p.Stmts = append(p.Stmts, bound.Statement{Expr: e})
	}
	return p
}

func intDecl(name string, rhs bound.Expr) *bound.Declaration {
	return &bound.Declaration{Name: name, Type: types.Int, Rhs: rhs}
}

func add(lhs, rhs bound.Expr) *bound.Binary {
	return &bound.Binary{Op: types.OpAdd, Lhs: lhs, Rhs: rhs, Type: types.Int}
}

func printInt(x bound.Expr) *bound.Print {
	return &bound.Print{Type: types.Int, X: x}
}

func mustGenerate(t *testing.T, b *ProgramBuilder, p *bound.Program) string {
	t.Helper()
	text, err := b.Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return text
}

func TestGenerateDeclareAndPrint(t *testing.T) {
	b := NewProgramBuilder(Options{})
	sum := add(&bound.Int{Value: 2}, &bound.Int{Value: 3})
	text := mustGenerate(t, b, prog(
		intDecl("x", sum),
		printInt(intDecl("x", sum)),
	))
	want := "declare i32 @printf(i8*, ...)\n" +
		"@format_num = private constant [3 x i8] c\"%d\\00\"\n" +
		"\n" +
		"define i32 @main() {\n" +
		"  %x = add i32 2, 3\n" +
		"  " + printCall + "%x)\n" +
		"  ret i32 0\n" +
		"}\n"
	if text != want {
		t.Fatalf("module mismatch\n got: %q\nwant: %q", text, want)
	}
}

func TestGeneratePrintLiteral(t *testing.T) {
	b := NewProgramBuilder(Options{})
	text := mustGenerate(t, b, prog(printInt(&bound.Int{Value: 5})))
	if !strings.Contains(text, "  "+printCall+"5)\n") {
		t.Fatalf("missing print of literal:\n%s", text)
	}
}

func TestGenerateLiteralInitializer(t *testing.T) {
	b := NewProgramBuilder(Options{})
	text := mustGenerate(t, b, prog(
		intDecl("a", &bound.Int{Value: 7}),
		intDecl("b", intDecl("a", &bound.Int{Value: 7})),
		intDecl("c", add(intDecl("a", &bound.Int{Value: 7}), &bound.Int{Value: 1})),
	))
	for _, line := range []string{"  %a = add i32 7, 0\n", "  %b = add i32 %a, 0\n", "  %c = add i32 %a, 1\n"} {
		if !strings.Contains(text, line) {
			t.Errorf("missing %q in\n%s", line, text)
		}
	}
	if strings.Contains(text, "declare") {
		t.Errorf("printf declared without a print:\n%s", text)
	}
}

func TestGenerateOneTimeEmission(t *testing.T) {
	b := NewProgramBuilder(Options{})
	mustGenerate(t, b, prog(printInt(&bound.Int{Value: 5}), printInt(&bound.Int{Value: 6})))
	text := mustGenerate(t, b, prog(printInt(&bound.Int{Value: 7})))

	if got := strings.Count(text, "declare i32 @printf"); got != 1 {
		t.Errorf("printf declared %d times", got)
	}
	if got := strings.Count(text, "@format_num = "); got != 1 {
		t.Errorf("format constant declared %d times", got)
	}
	if got := strings.Count(text, "ret i32 0"); got != 1 {
		t.Errorf("ret emitted %d times", got)
	}
	if got := strings.Count(text, printCall); got != 3 {
		t.Errorf("expected 3 prints, got %d", got)
	}
	if len(b.Globals()) != 2 {
		t.Errorf("globals = %d, want 2", len(b.Globals()))
	}
	main := b.Main()
	if _, ok := main[len(main)-1].(ReturnOK); !ok {
		t.Errorf("main does not end in ret: %#v", main[len(main)-1])
	}
}

func TestGenerateEmptyProgram(t *testing.T) {
	b := NewProgramBuilder(Options{})
	text := mustGenerate(t, b, prog())
	want := "\ndefine i32 @main() {\n  ret i32 0\n}\n"
	if text != want {
		t.Fatalf("got %q, want %q", text, want)
	}
}

func TestGenerateReferenceStatement(t *testing.T) {
	b := NewProgramBuilder(Options{})
	one := &bound.Int{Value: 1}
	text := mustGenerate(t, b, prog(intDecl("x", one), intDecl("x", one)))
	if got := strings.Count(text, "%x = "); got != 1 {
		t.Fatalf("x declared %d times:\n%s", got, text)
	}
}

func TestGenerateFaults(t *testing.T) {
	cases := []struct {
		name string
		expr bound.Expr
		want error
	}{
		{"sub", &bound.Binary{Op: types.OpSub, Lhs: &bound.Int{Value: 1}, Rhs: &bound.Int{Value: 2}, Type: types.Int}, ErrNotSupportedYet},
		{"bool decl", &bound.Declaration{Name: "b", Type: types.Bool, Rhs: &bound.Bool{Value: true}}, ErrNotSupportedYet},
		{"print bool", &bound.Print{Type: types.Bool, X: &bound.Bool{Value: true}}, ErrNotSupportedYet},
		{"print text", &bound.Print{Type: types.String, X: &bound.String{Value: "s"}}, ErrNotSupportedYet},
		{"bare literal", &bound.Int{Value: 1}, ErrNotSupportedYet},
		{"nested add", intDecl("n", add(add(&bound.Int{Value: 1}, &bound.Int{Value: 2}), &bound.Int{Value: 3})), ErrNotSupportedYet},
		{"paren", intDecl("p", &bound.Paren{X: &bound.Int{Value: 1}}), ErrInvariant},
		{"nil", nil, ErrInvariant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewProgramBuilder(Options{})
			_, err := b.Generate(prog(tc.expr))
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			var f *Fault
			if !errors.As(err, &f) {
				t.Fatalf("err %T is not *Fault", err)
			}
		})
	}
}

func TestGenerateRollsBack(t *testing.T) {
	b := NewProgramBuilder(Options{})
	before := mustGenerate(t, b, prog(intDecl("x", &bound.Int{Value: 1})))

	_, err := b.Generate(prog(
		printInt(intDecl("x", &bound.Int{Value: 1})),
		intDecl("y", &bound.Int{Value: 2}),
		&bound.Bool{Value: true},
	))
	if err == nil {
		t.Fatal("expected fault")
	}
	after, err := b.Module()
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	if after != before {
		t.Fatalf("state changed by failed generate\nbefore: %q\n after: %q", before, after)
	}

	// y and the printf declarations are available again
	text := mustGenerate(t, b, prog(intDecl("y", &bound.Int{Value: 2}), printInt(intDecl("y", &bound.Int{Value: 2}))))
	if strings.Count(text, "declare i32 @printf") != 1 || !strings.Contains(text, "%y = add i32 2, 0") {
		t.Fatalf("unexpected module after rollback:\n%s", text)
	}
}
