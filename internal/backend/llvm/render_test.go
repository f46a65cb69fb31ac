package llvm

import (
	"errors"
	"testing"
)

func TestTypeString(t *testing.T) {
	cases := []struct {
		ty   Type
		want string
	}{
		{I8, "i8"},
		{I32, "i32"},
		{I8Ptr, "i8*"},
		{I32Ptr, "i32*"},
		{ArrayOf(3, I8), "[3 x i8]"},
		{ArrayOf(2, ArrayOf(4, I32)), "[2 x [4 x i32]]"},
	}
	for _, tc := range cases {
		if got := tc.ty.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
	if !ArrayOf(3, I8).Equal(ArrayOf(3, I8)) || ArrayOf(3, I8).Equal(ArrayOf(4, I8)) {
		t.Error("array equality")
	}
}

func TestRenderGlobals(t *testing.T) {
	cases := []struct {
		ins  Instruction
		want string
	}{
		{printfDecl(), "declare i32 @printf(i8*, ...)"},
		{formatNumDecl(), `@format_num = private constant [3 x i8] c"%d\00"`},
		{&GlobalVariableDecl{Name: "g", Access: AccessGlobal, Type: I32, Value: "0"}, "@g = global i32 0"},
	}
	for _, tc := range cases {
		got, err := renderGlobal(tc.ins)
		if err != nil {
			t.Fatalf("render %T: %v", tc.ins, err)
		}
		if got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestRenderMainRejects(t *testing.T) {
	if _, err := renderMain(&LocalVariableDecl{Name: "s", Type: I8Ptr, Value: "x"}); !errors.Is(err, ErrNotSupportedYet) {
		t.Errorf("i8* local: err = %v", err)
	}
	if _, err := renderMain(printfDecl()); !errors.Is(err, ErrInvariant) {
		t.Errorf("declaration in main: err = %v", err)
	}
	if _, err := renderGlobal(ReturnOK{}); !errors.Is(err, ErrInvariant) {
		t.Errorf("ret in globals: err = %v", err)
	}
}

func TestRenderStatementText(t *testing.T) {
	x := &Variable{Name: "x", Type: I32}
	cases := []struct {
		st   Statement
		want string
	}{
		{I32Literal{Value: 4}, "add i32 4, 0"},
		{I32Literal{Value: -4}, "add i32 -4, 0"},
		{&Addition{Lhs: x, Rhs: I32Literal{Value: 1}}, "add i32 %x, 1"},
		{x, "add i32 %x, 0"},
	}
	for _, tc := range cases {
		got, err := initializerText(tc.st)
		if err != nil {
			t.Fatalf("%#v: %v", tc.st, err)
		}
		if got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
