package parser

// Node is an expression or statement. The set of implementations is closed.
type Node interface {
	node()
}

// Stmt is a Node that can appear at statement level.
type Stmt interface {
	Node
	stmt()
}

type UnaryNode struct {
	Op      UnaryOperator
	Operand Node
}

type BinaryNode struct {
	Op    BinaryOperator
	Left  Node
	Right Node
}

// AssignNode is an assignment used as an expression, e.g. the inner
// `b = 1` of `a = b = 1;`.
type AssignNode struct {
	Name  string
	Value Node
}

type ValueNode struct{ Value Value }

type VariableNode struct{ Name string }

// CallNode invokes a built-in by name.
type CallNode struct {
	Name string
	Args []Node
}

type ExprStmt struct{ Expr Node }

type PrintStmt struct{ Expr Node }

// VarStmt declares Name in the current scope. Init is nil for `var x;`.
type VarStmt struct {
	Name string
	Init Node
}

// AssignStmt rebinds an already declared variable.
type AssignStmt struct {
	Name  string
	Value Node
}

type BlockStmt struct{ Stmts []Stmt }

func (*UnaryNode) node() {}
func (*BinaryNode) node() {}
func (*AssignNode) node() {}
func (*ValueNode) node() {}
func (*VariableNode) node() {}
func (*CallNode) node() {}
func (*ExprStmt) node() {}
func (*PrintStmt) node() {}
func (*VarStmt) node() {}
func (*AssignStmt) node() {}
func (*BlockStmt) node() {}

func (*ExprStmt) stmt() {}
func (*PrintStmt) stmt() {}
func (*VarStmt) stmt() {}
func (*AssignStmt) stmt() {}
func (*BlockStmt) stmt() {}
