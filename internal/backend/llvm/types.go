package llvm

import "fmt"

// TypeKind enumerates the IR value types.
type TypeKind uint8

const (
	KindI8 TypeKind = iota
	KindI32
	KindI8Ptr
	KindI32Ptr
	KindArray
)

// Type is an IR value type. Count and Elem are set for arrays only.
type Type struct {
	Kind  TypeKind
	Count uint32
	Elem  *Type
}

var (
	I8     = Type{Kind: KindI8}
	I32    = Type{Kind: KindI32}
	I8Ptr  = Type{Kind: KindI8Ptr}
	I32Ptr = Type{Kind: KindI32Ptr}
)

func ArrayOf(count uint32, elem Type) Type {
	return Type{Kind: KindArray, Count: count, Elem: &elem}
}

func (t Type) String() string {
	switch t.Kind {
	case KindI8:
		return "i8"
	case KindI32:
		return "i32"
	case KindI8Ptr:
		return "i8*"
	case KindI32Ptr:
		return "i32*"
	case KindArray:
		if t.Elem == nil {
			return fmt.Sprintf("[%d x ?]", t.Count)
		}
		return fmt.Sprintf("[%d x %s]", t.Count, t.Elem)
	}
	return fmt.Sprintf("Type(%d)", t.Kind)
}

// Equal compares structurally.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind != KindArray {
		return true
	}
	if t.Count != o.Count || (t.Elem == nil) != (o.Elem == nil) {
		return false
	}
	return t.Elem == nil || t.Elem.Equal(*o.Elem)
}
