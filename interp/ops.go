package interp

import (
	"math"
	"strconv"

	"lox/parser"
)

func applyUnary(op parser.UnaryOperator, v parser.Value) (parser.Value, error) {
	switch op {
	case parser.Group:
		return v, nil
	case parser.Positive:
		if r, ok := v.(parser.RealValue); ok {
			return r, nil
		}
		return nil, evalErrorf("Cannot convert %s to a number", describe(v))
	case parser.Negative:
		if r, ok := v.(parser.RealValue); ok {
			return -r, nil
		}
		return nil, evalErrorf("Cannot convert %s to a number", describe(v))
	case parser.LogicalNot:
		switch v := v.(type) {
		case parser.BooleanValue:
			return !v, nil
		case parser.RealValue:
			return parser.BooleanValue(v == 0), nil
		case parser.NilValue:
			return parser.BooleanValue(true), nil
		}
		return nil, evalErrorf("Cannot convert %s to a boolean", describe(v))
	}
	panic("interp: unknown unary operator")
}

func applyBinary(op parser.BinaryOperator, l, r parser.Value) (parser.Value, error) {
	switch op {
	case parser.EqualTo:
		return parser.BooleanValue(Equal(l, r)), nil
	case parser.NotEqualTo:
		return parser.BooleanValue(!Equal(l, r)), nil
	case parser.Plus:
		if ls, ok := l.(parser.StringValue); ok {
			if rs, ok := r.(parser.StringValue); ok {
				return ls + rs, nil
			}
		}
		if a, b, ok := reals(l, r); ok {
			return a + b, nil
		}
		return nil, evalErrorf("Cannot add %s and %s", describe(l), describe(r))
	case parser.LogicalAnd, parser.LogicalOr:
		a, aok := l.(parser.BooleanValue)
		b, bok := r.(parser.BooleanValue)
		if !aok || !bok {
			return nil, evalErrorf("Cannot apply %s to %s and %s", op.Symbol(), describe(l), describe(r))
		}
		if op == parser.LogicalAnd {
			return a && b, nil
		}
		return a || b, nil
	}

	a, b, ok := reals(l, r)
	if !ok {
		switch op {
		case parser.Minus:
			return nil, evalErrorf("Cannot subtract %s from %s", describe(r), describe(l))
		case parser.Times:
			return nil, evalErrorf("Cannot multiply %s and %s", describe(l), describe(r))
		case parser.Div:
			return nil, evalErrorf("Cannot divide %s by %s", describe(l), describe(r))
		}
		return nil, evalErrorf("Cannot compare %s %s %s", describe(l), op.Symbol(), describe(r))
	}
	switch op {
	case parser.Minus:
		return a - b, nil
	case parser.Times:
		return a * b, nil
	case parser.Div:
		return a / b, nil
	case parser.LessThan:
		return parser.BooleanValue(a < b), nil
	case parser.GreaterThan:
		return parser.BooleanValue(a > b), nil
	case parser.LessThanOrEqualTo:
		return parser.BooleanValue(a <= b), nil
	case parser.GreaterThanOrEqualTo:
		return parser.BooleanValue(a >= b), nil
	}
	panic("interp: unknown binary operator")
}

func reals(l, r parser.Value) (parser.RealValue, parser.RealValue, bool) {
	a, aok := l.(parser.RealValue)
	b, bok := r.(parser.RealValue)
	return a, b, aok && bok
}

// Equal reports structural equality. Values of different kinds are never
// equal. Reals compare by representation: NaN equals NaN and 0 differs
// from -0.
func Equal(l, r parser.Value) bool {
	a, aok := l.(parser.RealValue)
	b, bok := r.(parser.RealValue)
	if aok && bok {
		if math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
			return true
		}
		return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
	}
	return l == r
}

func describe(v parser.Value) string {
	if s, ok := v.(parser.StringValue); ok {
		return strconv.Quote(string(s))
	}
	return v.Format()
}
