package interp

import (
	"fmt"
	"io"

	"lox/parser"
)

// Evaluator walks syntax trees against a Context. Output of print goes to
// the writer given to New.
type Evaluator struct {
	ctx Context
	out io.Writer
}

func New(ctx Context, out io.Writer) *Evaluator {
	return &Evaluator{ctx: ctx, out: out}
}

// Run executes stmts in order and stops at the first error.
func (e *Evaluator) Run(stmts []parser.Stmt) error {
	for _, s := range stmts {
		if _, err := e.Eval(s); err != nil {
			return err
		}
	}
	return nil
}

// Eval evaluates an expression or executes a statement. Statements other
// than expression statements, assignments and blocks yield nil.
func (e *Evaluator) Eval(node parser.Node) (parser.Value, error) {
	switch n := node.(type) {
	case *parser.ValueNode:
		return n.Value, nil
	case *parser.VariableNode:
		if v, ok := e.ctx.Get(n.Name); ok {
			return v, nil
		}
		return nil, evalErrorf("Variable %s is not defined", n.Name)
	case *parser.UnaryNode:
		v, err := e.Eval(n.Operand)
		if err != nil {
			return nil, err
		}
		return applyUnary(n.Op, v)
	case *parser.BinaryNode:
		l, err := e.Eval(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := e.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return applyBinary(n.Op, l, r)
	case *parser.AssignNode:
		v, err := e.Eval(n.Value)
		if err != nil {
			return nil, err
		}
		e.ctx.Assign(n.Name, v)
		return v, nil
	case *parser.CallNode:
		return e.call(n.Name, n.Args)
	case *parser.ExprStmt:
		return e.Eval(n.Expr)
	case *parser.PrintStmt:
		return e.call("print", []parser.Node{n.Expr})
	case *parser.VarStmt:
		var initial parser.Value
		if n.Init != nil {
			v, err := e.Eval(n.Init)
			if err != nil {
				return nil, err
			}
			initial = v
		}
		e.ctx.Declare(n.Name)
		if initial != nil {
			e.ctx.Assign(n.Name, initial)
		}
		return parser.Nil, nil
	case *parser.AssignStmt:
		v, err := e.Eval(n.Value)
		if err != nil {
			return nil, err
		}
		if _, ok := e.ctx.Get(n.Name); !ok {
			return nil, evalErrorf("Variable %s is not defined", n.Name)
		}
		e.ctx.Assign(n.Name, v)
		return v, nil
	case *parser.BlockStmt:
		e.ctx.PushScope("")
		result, err := e.block(n.Stmts)
		// The scope goes away even when a statement failed, so a Context
		// reused after an error is back at its previous depth.
		if perr := e.ctx.PopScope(); err == nil {
			err = perr
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	panic(fmt.Sprintf("interp: cannot evaluate %T", node))
}

func (e *Evaluator) block(stmts []parser.Stmt) (parser.Value, error) {
	result := parser.Nil
	for _, s := range stmts {
		v, err := e.Eval(s)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
