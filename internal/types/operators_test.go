package types

import "testing"

func TestBinarySpecs(t *testing.T) {
	cases := []struct {
		op      BinaryOp
		operand Type
		result  Type
	}{
		{OpAdd, Int, Int},
		{OpSub, Int, Int},
		{OpMul, Int, Int},
		{OpDiv, Int, Int},
		{OpAnd, Bool, Bool},
		{OpOr, Bool, Bool},
	}
	for _, tc := range cases {
		spec, ok := BinarySpecFor(tc.op)
		if !ok {
			t.Fatalf("no spec for %v", tc.op)
		}
		if spec.Operand != tc.operand || spec.Result != tc.result {
			t.Fatalf("%v: got %+v", tc.op, spec)
		}
		if !spec.Accepts(tc.operand, tc.operand) {
			t.Fatalf("%v must accept %v operands", tc.op, tc.operand)
		}
	}
	if _, ok := BinarySpecFor(BinaryOp(42)); ok {
		t.Fatalf("unknown operator must have no spec")
	}
}

func TestAcceptsRejectsMixed(t *testing.T) {
	spec, _ := BinarySpecFor(OpAdd)
	if spec.Accepts(Int, Bool) || spec.Accepts(Bool, Int) || spec.Accepts(String, String) {
		t.Fatalf("add must only accept Int operands")
	}
}

func TestNames(t *testing.T) {
	if OpAdd.Name() != "add" || OpOr.Name() != "or" {
		t.Fatalf("unexpected names %q %q", OpAdd.Name(), OpOr.Name())
	}
	if Bool.String() != "Bool" || String.String() != "String" {
		t.Fatalf("unexpected type names")
	}
}
