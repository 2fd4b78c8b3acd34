package parser

import (
	"golang.org/x/xerrors"

	"lox/scanner"
)

// postfixItem is one entry of the postfix output: an operand or an operator.
type postfixItem struct {
	operand Node
	op      Operator
}

type stackedOp struct {
	op   Operator
	prec int
}

// Expression parses one expression, stopping before the terminating ';'
// or end of input. The terminator is left in the stream.
func (p *Parser) Expression() (Node, error) {
	return p.expression(nil)
}

// expression runs the operator-precedence loop. When lead is non-nil it is
// an already consumed token that starts the expression.
func (p *Parser) expression(lead *scanner.Token) (Node, error) {
	var (
		ops         []stackedOp
		out         []postfixItem
		needOperand = true
	)

	for {
		var t scanner.Token
		if lead != nil {
			t, lead = *lead, nil
		} else {
			t = p.peek()
			if t.Kind == scanner.Semicolon || t.Kind == scanner.Eof {
				if needOperand {
					return nil, errorAt(t, "Expect expression before %s.", describe(t))
				}
				return buildTree(t, ops, out)
			}
			p.next()
		}

		if needOperand {
			if op, ok := unaryTokens[t.Kind]; ok {
				ops = append(ops, stackedOp{op, PrecUnary})
				continue
			}
			if t.Kind == scanner.LParen {
				ops = append(ops, stackedOp{Group, PrecGroup})
				continue
			}
			operand, err := primary(t)
			if err != nil {
				return nil, err
			}
			out = append(out, postfixItem{operand: operand})
			needOperand = false
			continue
		}

		if t.Kind == scanner.RParen {
			for len(ops) > 0 && ops[len(ops)-1].op != Group {
				out = append(out, postfixItem{op: ops[len(ops)-1].op})
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, errorAt(t, "Unmatched right parenthesis.")
			}
			// The group marker stays in the output so the tree keeps it.
			out = append(out, postfixItem{op: Group})
			ops = ops[:len(ops)-1]
			continue
		}

		var incoming Operator
		if op, ok := binaryTokens[t.Kind]; ok {
			incoming = op
		} else if t.Kind == scanner.Eq {
			incoming = Assign
		} else {
			return nil, errorAt(t, "Unexpected token %s after operand.", describe(t))
		}
		prec := Precedence(incoming)
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if top.prec < prec || top.prec == prec && leftAssociative(top.op) {
				out = append(out, postfixItem{op: top.op})
				ops = ops[:len(ops)-1]
				continue
			}
			break
		}
		ops = append(ops, stackedOp{incoming, prec})
		needOperand = true
	}
}

func leftAssociative(op Operator) bool {
	b, ok := op.(BinaryOperator)
	return ok && b.LeftAssociative()
}

// primary turns a literal or identifier token into an operand node.
func primary(t scanner.Token) (Node, error) {
	switch t.Kind {
	case scanner.Num:
		return &ValueNode{Value: RealValue(parseNumber(*t.Literal))}, nil
	case scanner.Str:
		return &ValueNode{Value: StringValue(*t.Literal)}, nil
	case scanner.True:
		return &ValueNode{Value: BooleanValue(true)}, nil
	case scanner.False:
		return &ValueNode{Value: BooleanValue(false)}, nil
	case scanner.Nil:
		return &ValueNode{Value: Nil}, nil
	case scanner.Ident:
		return &VariableNode{Name: t.Lexeme}, nil
	}
	return nil, errorAt(t, "Unexpected token %s, expected an operand.", describe(t))
}

// buildTree flushes the operator stack and rebuilds a tree from the postfix
// output. end is the terminating token, used for error positions.
func buildTree(end scanner.Token, ops []stackedOp, out []postfixItem) (Node, error) {
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.op == Group {
			return nil, errorAt(end, "Unclosed left parenthesis.")
		}
		out = append(out, postfixItem{op: top.op})
		ops = ops[:len(ops)-1]
	}

	tb := treeBuilder{end: end, out: out}
	root, err := tb.pop()
	if err != nil {
		return nil, err
	}
	if len(tb.out) != 0 {
		return nil, malformed(end, "Unexpected trailing operands in expression.")
	}
	return root, nil
}

type treeBuilder struct {
	end scanner.Token
	out []postfixItem
}

// pop removes the last postfix item and builds the subtree it roots.
func (tb *treeBuilder) pop() (Node, error) {
	if len(tb.out) == 0 {
		return nil, malformed(tb.end, "Incomplete expression.")
	}
	item := tb.out[len(tb.out)-1]
	tb.out = tb.out[:len(tb.out)-1]

	switch op := item.op.(type) {
	case nil:
		return item.operand, nil
	case BinaryOperator:
		right, err := tb.pop()
		if err != nil {
			return nil, err
		}
		left, err := tb.pop()
		if err != nil {
			return nil, err
		}
		return &BinaryNode{Op: op, Left: left, Right: right}, nil
	case UnaryOperator:
		operand, err := tb.pop()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{Op: op, Operand: operand}, nil
	case AssignmentOperator:
		value, err := tb.pop()
		if err != nil {
			return nil, err
		}
		if len(tb.out) == 0 {
			return nil, malformed(tb.end, "Incomplete expression.")
		}
		target := tb.out[len(tb.out)-1]
		tb.out = tb.out[:len(tb.out)-1]
		v, ok := target.operand.(*VariableNode)
		if target.op != nil || !ok {
			return nil, malformed(tb.end, "Left side of assignment is not a variable.")
		}
		return &AssignNode{Name: v.Name, Value: value}, nil
	}
	panic("parser: unknown operator in postfix output")
}

// malformed reports a postfix output that cannot form a tree. More input
// would not fix it, even when the expression ended at end of input.
func malformed(end scanner.Token, msg string) error {
	return &ParseError{Line: end.Line, Msg: msg, frame: xerrors.Caller(1)}
}
