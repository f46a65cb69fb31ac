package format

import (
	"errors"
	"testing"

	"rsharp/internal/parser"
	"rsharp/internal/source"
)

func virtual(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("fmt.rsharp", []byte(src)))
}

func TestFormatFile(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opt  Options
		want string
	}{
		{"empty", "", Options{}, ""},
		{"spacing", "let x=2+3;print   x", Options{}, "let x = 2 + 3;\nprint x;\n"},
		{"parens", "print( 1 );let y = ( x+1 )*2;", Options{}, "print (1);\nlet y = (x + 1) * 2;\n"},
		{"trailing comment", "let x = 1; // one\nprint x;", Options{}, "let x = 1; // one\nprint x;\n"},
		{"leading comment", "// header\n\n\n\nlet x = 1;\n\n\n\nprint x;\n", Options{}, "// header\n\nlet x = 1;\n\nprint x;\n"},
		{"drop comments", "// header\nlet x = 1; // one\n", Options{DropComments: true}, "let x = 1;\n"},
		{"no blank lines", "let x = 1;\n\nprint x;", Options{MaxBlankLines: -1}, "let x = 1;\nprint x;\n"},
		{"comment at eof", "print 1 // done\n", Options{}, "print 1; // done\n"},
		{"logical", "true&&false||true", Options{}, "true && false || true;\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatFile(virtual(tc.src), tc.opt)
			if err != nil {
				t.Fatalf("FormatFile: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("FormatFile(%q)\n got %q\nwant %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	src := "// c\nlet a=1;let b = (a+2)*3; // tail\n\n\nprint b"
	once, err := FormatFile(virtual(src), Options{})
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	twice, err := FormatFile(virtual(string(once)), Options{})
	if err != nil {
		t.Fatalf("FormatFile second pass: %v", err)
	}
	if string(once) != string(twice) {
		t.Fatalf("not idempotent:\n%q\n%q", once, twice)
	}
}

func TestFormatParseError(t *testing.T) {
	src := "let = 1;"
	got, err := FormatFile(virtual(src), Options{})
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *parser.Error, got %v", err)
	}
	if string(got) != src {
		t.Fatalf("source should be returned untouched, got %q", got)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	ok, msg := CheckRoundTrip(virtual("let x=(1+2)*3;print x;print \"hi\""), Options{})
	if !ok {
		t.Fatalf("round trip failed: %s", msg)
	}
	if ok, _ := CheckRoundTrip(virtual("let ="), Options{}); ok {
		t.Fatalf("round trip should fail on unparsable input")
	}
}

func TestShape(t *testing.T) {
	prog, perr := parser.Parse(virtual("let x = (1 + 2) * y; print x"))
	if perr != nil {
		t.Fatalf("parse: %s", perr.Message())
	}
	want := "((let x (* (paren (+ 1 2)) y)) (print x))"
	if got := Shape(prog); got != want {
		t.Fatalf("Shape = %s, want %s", got, want)
	}
}
