package llvm

import (
	"fmt"
	"strconv"
	"strings"
)

const printNumberCall = "call i32 (i8*, ...) @printf(i8* getelementptr inbounds ([3 x i8], [3 x i8]* @format_num, i32 0, i32 0), i32 %s)"

// Render serializes the two streams into module text: the globals, a blank
// line, then main.
func Render(globals, main []Instruction) (string, error) {
	var buf strings.Builder
	for _, ins := range globals {
		line, err := renderGlobal(ins)
		if err != nil {
			return "", err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	lines := make([]string, 0, len(main))
	for _, ins := range main {
		line, err := renderMain(ins)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	buf.WriteString("define i32 @main() {\n  ")
	buf.WriteString(strings.Join(lines, "\n  "))
	buf.WriteString("\n}\n")
	return buf.String(), nil
}

func renderGlobal(ins Instruction) (string, error) {
	switch ins := ins.(type) {
	case *VarArgFunctionDecl:
		params := "..."
		if len(ins.In) > 0 {
			params = ins.In[0].String() + ", ..."
		}
		return fmt.Sprintf("declare %s @%s(%s)", ins.Out, ins.Name, params), nil
	case *GlobalVariableDecl:
		if ins.Constant {
			return fmt.Sprintf("@%s = %s constant %s %s", ins.Name, ins.Access, ins.Type, ins.Value), nil
		}
		return fmt.Sprintf("@%s = %s %s %s", ins.Name, ins.Access, ins.Type, ins.Value), nil
	case nil:
		return "", invariant("nil global instruction")
	}
	return "", invariant("%T in global stream", ins)
}

func renderMain(ins Instruction) (string, error) {
	switch ins := ins.(type) {
	case *PrintNumber:
		return fmt.Sprintf(printNumberCall, ins.Operand), nil
	case *LocalVariableDecl:
		if ins.Type.Kind != KindI32 {
			return "", notSupported("%s local %%%s", ins.Type, ins.Name)
		}
		return fmt.Sprintf("%%%s = %s", ins.Name, ins.Value), nil
	case ReturnOK:
		return "ret i32 0", nil
	case nil:
		return "", invariant("nil main instruction")
	}
	return "", invariant("%T in main stream", ins)
}

// initializerText renders the value a local is initialized with.
func initializerText(s Statement) (string, error) {
	switch s := s.(type) {
	case I32Literal:
		return "add i32 " + strconv.Itoa(int(s.Value)) + ", 0", nil
	case *Variable:
		return "add i32 %" + s.Name + ", 0", nil
	case *Addition:
		lhs, err := operandText(s.Lhs)
		if err != nil {
			return "", err
		}
		rhs, err := operandText(s.Rhs)
		if err != nil {
			return "", err
		}
		return "add i32 " + lhs + ", " + rhs, nil
	case *Print:
		return "", notSupported("print used as a value")
	case nil:
		return "", invariant("missing initializer")
	}
	return "", invariant("unknown statement %T", s)
}

// operandText renders a bare literal or a %register.
func operandText(s Statement) (string, error) {
	switch s := s.(type) {
	case I32Literal:
		return strconv.Itoa(int(s.Value)), nil
	case *Variable:
		return "%" + s.Name, nil
	case *Addition:
		return "", notSupported("nested addition")
	case *Print:
		return "", notSupported("print used as a value")
	case nil:
		return "", invariant("missing operand")
	}
	return "", invariant("unknown statement %T", s)
}
