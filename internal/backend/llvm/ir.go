package llvm

// Access is the linkage of a global.
type Access uint8

const (
	AccessGlobal Access = iota
	AccessPrivate
)

func (a Access) String() string {
	if a == AccessPrivate {
		return "private"
	}
	return "global"
}

// Instruction is one entry of the global or main stream: *VarArgFunctionDecl,
// *GlobalVariableDecl, *LocalVariableDecl, *PrintNumber or ReturnOK.
type Instruction interface {
	instruction()
}

type VarArgFunctionDecl struct {
	Out  Type
	Name string
	In   []Type
}

type GlobalVariableDecl struct {
	Name     string
	Access   Access
	Constant bool
	Type     Type
	Value    string
}

// LocalVariableDecl is a register in main; Value is the rendered initializer.
type LocalVariableDecl struct {
	Name  string
	Type  Type
	Value string
}

// PrintNumber prints Operand, a literal or a %register, through printf.
type PrintNumber struct {
	Operand string
}

type ReturnOK struct{}

func (*VarArgFunctionDecl) instruction() {}
func (*GlobalVariableDecl) instruction() {}
func (*LocalVariableDecl) instruction()  {}
func (*PrintNumber) instruction()        {}
func (ReturnOK) instruction()            {}

const (
	printfName    = "printf"
	formatNumName = "format_num"
)

func printfDecl() *VarArgFunctionDecl {
	return &VarArgFunctionDecl{Out: I32, Name: printfName, In: []Type{I8Ptr}}
}

func formatNumDecl() *GlobalVariableDecl {
	return &GlobalVariableDecl{
		Name:     formatNumName,
		Access:   AccessPrivate,
		Constant: true,
		Type:     ArrayOf(3, I8),
		Value:    `c"%d\00"`,
	}
}

// Statement is the lowered form of a bound expression: I32Literal,
// *Addition, *Variable or *Print.
type Statement interface {
	statement()
}

type I32Literal struct {
	Value int32
}

type Addition struct {
	Lhs Statement
	Rhs Statement
}

// Variable declares Name when Init is set and refers to it otherwise.
type Variable struct {
	Name string
	Type Type
	Init Statement
}

type Print struct {
	Type Type
	X    Statement
}

func (I32Literal) statement() {}
func (*Addition) statement()  {}
func (*Variable) statement()  {}
func (*Print) statement()     {}
