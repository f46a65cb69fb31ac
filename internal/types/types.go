package types

import "fmt"

// Type enumerates the value types of the language.
type Type uint8

const (
	Int Type = iota
	Bool
	String
)

func (t Type) String() string {
	switch t {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	case String:
		return "String"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}
