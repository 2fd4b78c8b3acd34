package analysis

import (
	"fmt"

	"lox/parser"
)

type Symbol string

// Type is the static type of an expression. Without functions or control
// flow every expression has one, except after an error has been reported.
type Type int

const (
	Unknown Type = iota
	Real
	String
	Bool
	Nil
)

func (t Type) String() string {
	switch t {
	case Real:
		return "number"
	case String:
		return "string"
	case Bool:
		return "boolean"
	case Nil:
		return "nil"
	}
	return "unknown"
}

type SymbolTypesTable struct {
	Parent  *SymbolTypesTable
	Symbols map[Symbol]Type
}

func (t *SymbolTypesTable) find(name Symbol) (Type, bool) {
	if symType, ok := t.Symbols[name]; ok {
		return symType, true
	} else if t.Parent == nil {
		return Unknown, false
	} else {
		return t.Parent.find(name)
	}
}

func (t *SymbolTypesTable) contains(name Symbol) bool {
	_, ok := t.find(name)
	return ok
}

type Env struct {
	Vars *SymbolTypesTable
}

func newEnv(env Env) Env {
	return Env{Vars: &SymbolTypesTable{Parent: env.Vars, Symbols: map[Symbol]Type{}}}
}

// Check walks stmts in program order, tracking the type bound to every
// variable per scope, and returns the problems evaluation would hit.
func Check(stmts []parser.Stmt) []error {
	c := checker{}
	env := Env{Vars: &SymbolTypesTable{Symbols: map[Symbol]Type{}}}
	for _, stmt := range stmts {
		c.stmt(env, stmt)
	}
	return c.errs
}

type checker struct {
	errs []error
}

func (c *checker) errorf(format string, args ...interface{}) Type {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
	return Unknown
}

func (c *checker) stmt(env Env, stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		c.typeOf(env, s.Expr)
	case *parser.PrintStmt:
		c.typeOf(env, s.Expr)
	case *parser.VarStmt:
		t := Nil
		if s.Init != nil {
			t = c.typeOf(env, s.Init)
		}
		if _, ok := env.Vars.Symbols[Symbol(s.Name)]; !ok || s.Init != nil {
			env.Vars.Symbols[Symbol(s.Name)] = t
		}
	case *parser.AssignStmt:
		t := c.typeOf(env, s.Value)
		if !env.Vars.contains(Symbol(s.Name)) {
			c.errorf("Variable %s is not defined", s.Name)
			return
		}
		env.Vars.Symbols[Symbol(s.Name)] = t
	case *parser.BlockStmt:
		inner := newEnv(env)
		for _, st := range s.Stmts {
			c.stmt(inner, st)
		}
	}
}

func (c *checker) typeOf(env Env, node parser.Node) Type {
	switch n := node.(type) {
	case *parser.ValueNode:
		switch n.Value.(type) {
		case parser.RealValue:
			return Real
		case parser.StringValue:
			return String
		case parser.BooleanValue:
			return Bool
		}
		return Nil
	case *parser.VariableNode:
		t, ok := env.Vars.find(Symbol(n.Name))
		if !ok {
			return c.errorf("Variable %s is not defined", n.Name)
		}
		return t
	case *parser.AssignNode:
		t := c.typeOf(env, n.Value)
		env.Vars.Symbols[Symbol(n.Name)] = t
		return t
	case *parser.CallNode:
		for _, a := range n.Args {
			c.typeOf(env, a)
		}
		return Nil
	case *parser.UnaryNode:
		t := c.typeOf(env, n.Operand)
		if t == Unknown {
			return Unknown
		}
		switch n.Op {
		case parser.Group:
			return t
		case parser.Positive, parser.Negative:
			if t != Real {
				return c.errorf("Cannot convert %s to a number", t)
			}
			return Real
		case parser.LogicalNot:
			if t == String {
				return c.errorf("Cannot convert %s to a boolean", t)
			}
			return Bool
		}
	case *parser.BinaryNode:
		l, r := c.typeOf(env, n.Left), c.typeOf(env, n.Right)
		if l == Unknown || r == Unknown {
			return Unknown
		}
		switch n.Op {
		case parser.EqualTo, parser.NotEqualTo:
			return Bool
		case parser.Plus:
			if l == r && (l == Real || l == String) {
				return l
			}
		case parser.Minus, parser.Times, parser.Div:
			if l == Real && r == Real {
				return Real
			}
		case parser.LessThan, parser.GreaterThan, parser.LessThanOrEqualTo, parser.GreaterThanOrEqualTo:
			if l == Real && r == Real {
				return Bool
			}
		case parser.LogicalAnd, parser.LogicalOr:
			if l == Bool && r == Bool {
				return Bool
			}
		}
		return c.mismatch(n.Op, l, r)
	}
	return Unknown
}

// mismatch reports a binary operator applied to operand types it does not
// accept, worded as evaluation would word it.
func (c *checker) mismatch(op parser.BinaryOperator, l, r Type) Type {
	switch op {
	case parser.Plus:
		return c.errorf("Cannot add %s and %s", l, r)
	case parser.Minus:
		return c.errorf("Cannot subtract %s from %s", r, l)
	case parser.Times:
		return c.errorf("Cannot multiply %s and %s", l, r)
	case parser.Div:
		return c.errorf("Cannot divide %s by %s", l, r)
	case parser.LogicalAnd, parser.LogicalOr:
		return c.errorf("Cannot apply %s to %s and %s", op.Symbol(), l, r)
	}
	return c.errorf("Cannot compare %s %s %s", l, op.Symbol(), r)
}
