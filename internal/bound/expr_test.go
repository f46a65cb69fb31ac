package bound

import (
	"testing"

	"rsharp/internal/types"
)

func TestTypeOfTotal(t *testing.T) {
	decl := &Declaration{Name: "x", Type: types.Int, Rhs: &Int{Value: 2}}
	cases := []struct {
		name string
		e    Expr
		want types.Type
	}{
		{"int", &Int{Value: 1}, types.Int},
		{"bool", &Bool{Value: true}, types.Bool},
		{"string", &String{Value: "s"}, types.String},
		{"declaration", decl, types.Int},
		{"binary", &Binary{Op: types.OpAnd, Lhs: &Bool{}, Rhs: &Bool{}, Type: types.Bool}, types.Bool},
		{"paren", &Paren{X: &String{}}, types.String},
		{"paren of declaration", &Paren{X: decl}, types.Int},
		{"print", &Print{Type: types.Int, X: decl}, types.Int},
	}
	for _, tc := range cases {
		if got := TypeOf(tc.e); got != tc.want {
			t.Fatalf("%s: TypeOf() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTypeOfPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("TypeOf(nil) must panic")
		}
	}()
	TypeOf(nil)
}
