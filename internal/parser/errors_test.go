package parser

import (
	"strings"
	"testing"

	"rsharp/internal/diag"
	"rsharp/internal/token"
)

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		kind       ErrorKind
		start, end uint32
		expects    token.Kind
	}{
		{"eof after assign", "let x =", UnrecognizedEOF, 7, 8, token.IntLit},
		{"eof after let", "let", UnrecognizedEOF, 3, 4, token.Ident},
		{"missing assign", "let x 1", UnrecognizedToken, 6, 7, token.Assign},
		{"missing close paren", "(1 + 2", UnrecognizedEOF, 6, 7, token.RParen},
		{"dangling operator", "1 +;", UnrecognizedToken, 3, 4, token.Ident},
		{"two expressions", "1 2", UnrecognizedToken, 2, 3, token.Semicolon},
		{"empty statement", ";", UnrecognizedToken, 0, 1, token.KwLet},
		{"lex error", "let x = #", InvalidToken, 8, 9, token.IntLit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := parseSource(t, tc.src)
			if err == nil {
				t.Fatalf("expected error, got %d statements", len(prog.Stmts))
			}
			if prog != nil {
				t.Fatalf("failed parse must not return a program")
			}
			if err.Kind != tc.kind {
				t.Fatalf("kind = %v, want %v", err.Kind, tc.kind)
			}
			if err.Span.Start != tc.start || err.Span.End != tc.end {
				t.Fatalf("span = %v, want [%d,%d)", err.Span, tc.start, tc.end)
			}
			found := false
			for _, k := range err.Expected {
				if k == tc.expects {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected set %v lacks %v", err.Expected, tc.expects)
			}
		})
	}
}

func TestPrintNotAllowedAsOperand(t *testing.T) {
	_, err := parseSource(t, "1 + print 2")
	if err == nil || err.Kind != UnrecognizedToken {
		t.Fatalf("expected UnrecognizedToken, got %v", err)
	}
	for _, k := range err.Expected {
		if k == token.KwPrint {
			t.Fatalf("print must not be offered as an operand")
		}
	}
}

func TestIntLiteralRange(t *testing.T) {
	_, err := parseSource(t, "print 2147483648")
	if err == nil || err.Kind != InvalidToken {
		t.Fatalf("expected InvalidToken, got %v", err)
	}
	if err.Span.Start != 6 || err.Span.End != 16 {
		t.Fatalf("span = %v", err.Span)
	}
	if !strings.Contains(err.Detail, "out of range") {
		t.Fatalf("detail = %q", err.Detail)
	}
}

func TestErrorDiagnostic(t *testing.T) {
	_, err := parseSource(t, "let x =")
	d := err.Diagnostic()
	if d.Code != diag.SynUnrecognizedEOF || d.Message != "Bad End Of File." {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Severity != diag.SevError {
		t.Fatalf("parse failures are errors")
	}
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, `"integer"`) {
		t.Fatalf("expected note listing expected tokens, got %+v", d.Notes)
	}

	_, err = parseSource(t, "let 1")
	if got := err.Diagnostic().Message; got != "Unrecognized Token." {
		t.Fatalf("message = %q", got)
	}
	_, err = parseSource(t, "$")
	if got := err.Diagnostic().Message; got != "Invalid Token." {
		t.Fatalf("message = %q", got)
	}
}
