package bound

// Program is the result of one successful bind call.
type Program struct {
	Stmts []Statement
}

// Statement wraps one bound expression.
type Statement struct {
	Expr Expr
}
