package interp

import (
	"fmt"

	"golang.org/x/xerrors"
)

// EvalError aborts the current evaluation.
type EvalError struct {
	Msg   string
	frame xerrors.Frame
}

func (e *EvalError) Error() string { return e.Msg }

func (e *EvalError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *EvalError) FormatError(p xerrors.Printer) error {
	p.Print(e.Msg)
	e.frame.Format(p)
	return nil
}

func evalErrorf(format string, args ...interface{}) error {
	return &EvalError{
		Msg:   fmt.Sprintf(format, args...),
		frame: xerrors.Caller(1),
	}
}
