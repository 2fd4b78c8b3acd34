package parser

import (
	"strconv"

	"lox/scanner"
)

// Parser builds statements and expressions from a token stream with a single
// token of lookahead.
type Parser struct {
	tokens  *scanner.Stream
	lexErrs []*scanner.LexError
}

// New returns a parser over src. Lexical errors met while parsing are
// collected and available from LexErrors.
func New(src string) *Parser {
	p := &Parser{}
	s := scanner.New(src, func(offset, line int, msg string) {
		p.lexErrs = append(p.lexErrs, &scanner.LexError{Offset: offset, Line: line, Msg: msg})
	})
	p.tokens = scanner.NewStream(s)
	return p
}

// LexErrors returns the lexical errors reported so far.
func (p *Parser) LexErrors() []*scanner.LexError {
	return p.lexErrs
}

func (p *Parser) peek() scanner.Token {
	return p.tokens.Peek()
}

func (p *Parser) next() scanner.Token {
	return p.tokens.Next()
}

func (p *Parser) match(kinds ...scanner.TokenKind) bool {
	t := p.peek()
	for _, kind := range kinds {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind scanner.TokenKind) (scanner.Token, error) {
	t := p.next()
	if t.Kind != kind {
		return t, errorAt(t, "Expected %s but got %s.", kind, t.Kind)
	}
	return t, nil
}

// AtEnd reports whether only the end of input remains.
func (p *Parser) AtEnd() bool {
	return p.match(scanner.Eof)
}

// Program parses statements until the end of input.
func (p *Parser) Program() ([]Stmt, error) {
	var stmts []Stmt
	for !p.AtEnd() {
		stmt, err := p.Statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Statement parses one statement.
func (p *Parser) Statement() (Stmt, error) {
	switch p.peek().Kind {
	case scanner.Print:
		return p.printStmt()
	case scanner.Var:
		return p.varStmt()
	case scanner.Ident:
		return p.identStmt()
	case scanner.LBrace:
		return p.block()
	}
	e, err := p.Expression()
	if err != nil {
		return nil, err
	}
	return p.endStmt(&ExprStmt{Expr: e})
}

// endStmt consumes the ';' that ends stmt.
func (p *Parser) endStmt(stmt Stmt) (Stmt, error) {
	if _, err := p.consume(scanner.Semicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) printStmt() (Stmt, error) {
	p.next()
	e, err := p.Expression()
	if err != nil {
		return nil, err
	}
	return p.endStmt(&PrintStmt{Expr: e})
}

func (p *Parser) varStmt() (Stmt, error) {
	p.next()
	name, err := p.consume(scanner.Ident)
	if err != nil {
		return nil, err
	}
	if !p.match(scanner.Eq) {
		return p.endStmt(&VarStmt{Name: name.Lexeme})
	}
	p.next()
	init, err := p.Expression()
	if err != nil {
		return nil, err
	}
	return p.endStmt(&VarStmt{Name: name.Lexeme, Init: init})
}

// identStmt handles `name = expr;`. Any other token after the identifier
// makes it the first operand of an expression statement.
func (p *Parser) identStmt() (Stmt, error) {
	name := p.next()
	if !p.match(scanner.Eq) {
		e, err := p.expression(&name)
		if err != nil {
			return nil, err
		}
		return p.endStmt(&ExprStmt{Expr: e})
	}
	p.next()
	value, err := p.Expression()
	if err != nil {
		return nil, err
	}
	return p.endStmt(&AssignStmt{Name: name.Lexeme, Value: value})
}

func (p *Parser) block() (Stmt, error) {
	p.next()
	blk := &BlockStmt{}
	for !p.match(scanner.RBrace) {
		if p.AtEnd() {
			return nil, errorAt(p.peek(), "Expected %s but got %s.", scanner.RBrace, scanner.Eof)
		}
		stmt, err := p.Statement()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, stmt)
	}
	p.next()
	return blk, nil
}

// ParseExpression parses a single expression from src.
func ParseExpression(src string) (Node, error) {
	return New(src).Expression()
}

// ParseProgram parses every statement in src.
func ParseProgram(src string) ([]Stmt, error) {
	return New(src).Program()
}

func parseNumber(lit string) float64 {
	f, _ := strconv.ParseFloat(lit, 64)
	return f
}
