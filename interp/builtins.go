package interp

import (
	"fmt"
	"io"

	"lox/parser"
)

type builtin struct {
	arity int
	fn    func(out io.Writer, args []parser.Value) (parser.Value, error)
}

var builtins = map[string]builtin{
	"print": {arity: 1, fn: printBuiltin},
}

func printBuiltin(out io.Writer, args []parser.Value) (parser.Value, error) {
	if _, err := fmt.Fprintln(out, Display(args[0])); err != nil {
		return nil, evalErrorf("print: %v", err)
	}
	return parser.Nil, nil
}

// call evaluates args left to right and invokes the named built-in.
func (e *Evaluator) call(name string, args []parser.Node) (parser.Value, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, evalErrorf("Undefined built-in %s", name)
	}
	if len(args) != b.arity {
		return nil, evalErrorf("%s expects %d argument(s), got %d", name, b.arity, len(args))
	}
	vals := make([]parser.Value, len(args))
	for i, a := range args {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return b.fn(e.out, vals)
}
