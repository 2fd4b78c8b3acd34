package parser

import "lox/scanner"

// Operator is a UnaryOperator, a BinaryOperator or Assign.
type Operator interface {
	Symbol() string
	operator()
}

type UnaryOperator int

const (
	Positive UnaryOperator = iota
	Negative
	LogicalNot
	// Group marks an open parenthesis. It evaluates to its operand.
	Group
)

type BinaryOperator int

const (
	Plus BinaryOperator = iota
	Minus
	Times
	Div
	EqualTo
	NotEqualTo
	LessThan
	GreaterThan
	LessThanOrEqualTo
	GreaterThanOrEqualTo
	LogicalOr
	LogicalAnd
)

// AssignmentOperator is kept apart from the binary operators because its
// left operand must be a variable name.
type AssignmentOperator struct{}

var Assign = AssignmentOperator{}

var unarySymbols = [...]string{
	Positive:   "+",
	Negative:   "-",
	LogicalNot: "!",
	Group:      "group",
}

var binarySymbols = [...]string{
	Plus:                 "+",
	Minus:                "-",
	Times:                "*",
	Div:                  "/",
	EqualTo:              "==",
	NotEqualTo:           "!=",
	LessThan:             "<",
	GreaterThan:          ">",
	LessThanOrEqualTo:    "<=",
	GreaterThanOrEqualTo: ">=",
	LogicalOr:            "||",
	LogicalAnd:           "&&",
}

func (o UnaryOperator) Symbol() string { return unarySymbols[o] }
func (o BinaryOperator) Symbol() string { return binarySymbols[o] }
func (AssignmentOperator) Symbol() string { return "=" }

func (UnaryOperator) operator() {}
func (BinaryOperator) operator() {}
func (AssignmentOperator) operator() {}

// LeftAssociative reports whether chains of o group left to right.
// Every binary operator of the language does.
func (o BinaryOperator) LeftAssociative() bool { return true }

// Precedence levels. Lower numbers bind tighter.
const (
	PrecUnary      = 3
	PrecFactor     = 5
	PrecTerm       = 6
	PrecRelational = 9
	PrecEquality   = 10
	PrecAnd        = 14
	PrecOr         = 15
	PrecAssign     = 16
	// PrecGroup is looser than everything so an open parenthesis is only
	// popped by its closing one.
	PrecGroup = 100
)

var unaryTokens = map[scanner.TokenKind]UnaryOperator{
	scanner.Plus:  Positive,
	scanner.Minus: Negative,
	scanner.LNot:  LogicalNot,
}

var binaryTokens = map[scanner.TokenKind]BinaryOperator{
	scanner.Plus:  Plus,
	scanner.Minus: Minus,
	scanner.Star:  Times,
	scanner.Slash: Div,
	scanner.EqEq:  EqualTo,
	scanner.Ne:    NotEqualTo,
	scanner.Lt:    LessThan,
	scanner.Gt:    GreaterThan,
	scanner.Lte:   LessThanOrEqualTo,
	scanner.Gte:   GreaterThanOrEqualTo,
	scanner.Or:    LogicalOr,
	scanner.And:   LogicalAnd,
}

// Precedence returns the binding level of op.
func Precedence(op Operator) int {
	switch o := op.(type) {
	case UnaryOperator:
		if o == Group {
			return PrecGroup
		}
		return PrecUnary
	case BinaryOperator:
		switch o {
		case Times, Div:
			return PrecFactor
		case Plus, Minus:
			return PrecTerm
		case LessThan, GreaterThan, LessThanOrEqualTo, GreaterThanOrEqualTo:
			return PrecRelational
		case EqualTo, NotEqualTo:
			return PrecEquality
		case LogicalAnd:
			return PrecAnd
		case LogicalOr:
			return PrecOr
		}
	case AssignmentOperator:
		return PrecAssign
	}
	panic("parser: unknown operator")
}
