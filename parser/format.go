package parser

import (
	"fmt"
	"strings"

	"github.com/kr/text"
)

// Format renders n in fully parenthesized prefix form, e.g. (+ 1 (* 2 3)).
// Statements render with their terminating ';' and blocks indent their
// contents by two spaces per level.
func Format(n Node) string {
	switch n := n.(type) {
	case *UnaryNode:
		return fmt.Sprintf("(%s %s)", n.Op.Symbol(), Format(n.Operand))
	case *BinaryNode:
		return fmt.Sprintf("(%s %s %s)", n.Op.Symbol(), Format(n.Left), Format(n.Right))
	case *AssignNode:
		return n.Name + " = " + Format(n.Value)
	case *ValueNode:
		return n.Value.Format()
	case *VariableNode:
		return n.Name
	case *CallNode:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = Format(a)
		}
		return n.Name + "(" + strings.Join(args, ", ") + ")"
	case *ExprStmt:
		return Format(n.Expr) + ";"
	case *PrintStmt:
		return "print " + Format(n.Expr) + ";"
	case *VarStmt:
		if n.Init == nil {
			return "var " + n.Name + ";"
		}
		return "var " + n.Name + " = " + Format(n.Init) + ";"
	case *AssignStmt:
		return n.Name + " = " + Format(n.Value) + ";"
	case *BlockStmt:
		if len(n.Stmts) == 0 {
			return "{}"
		}
		lines := make([]string, len(n.Stmts))
		for i, s := range n.Stmts {
			lines[i] = Format(s)
		}
		return "{\n" + text.Indent(strings.Join(lines, "\n"), "  ") + "\n}"
	}
	panic(fmt.Sprintf("parser: cannot format %T", n))
}
