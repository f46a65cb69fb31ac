package ast

// Program is one parsed input, statements in source order.
type Program struct {
	Stmts []Stmt
}

// Stmt is one of *ExprStmt or *DeclareStmt.
type Stmt interface {
	stmtNode()
}

type ExprStmt struct {
	X Expr
}

// DeclareStmt is `let Name = Rhs`.
type DeclareStmt struct {
	Name *Ident
	Rhs  Expr
}

func (*ExprStmt) stmtNode()    {}
func (*DeclareStmt) stmtNode() {}
