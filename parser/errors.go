package parser

import (
	"fmt"

	"golang.org/x/xerrors"

	"lox/scanner"
)

// ParseError aborts the parse of one expression or statement.
type ParseError struct {
	Line int
	Msg  string
	// Incomplete is set when the input ended before the construct did.
	Incomplete bool
	frame      xerrors.Frame
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
}

func (e *ParseError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *ParseError) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	e.frame.Format(p)
	return nil
}

func errorAt(tok scanner.Token, format string, args ...interface{}) error {
	return &ParseError{
		Line:       tok.Line,
		Msg:        fmt.Sprintf(format, args...),
		Incomplete: tok.Kind == scanner.Eof,
		frame:      xerrors.Caller(1),
	}
}

// IsIncomplete reports whether err is a parse error caused by input that
// ended too early, so that more input could complete it.
func IsIncomplete(err error) bool {
	var perr *ParseError
	return xerrors.As(err, &perr) && perr.Incomplete
}

func describe(tok scanner.Token) string {
	if tok.Kind == scanner.Eof {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", tok.Lexeme)
}
