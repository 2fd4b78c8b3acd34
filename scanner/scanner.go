package scanner

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ErrorFunc receives lexical errors. Scanning continues after the call.
type ErrorFunc func(offset, line int, msg string)

// LexError is a recoverable lexical error.
type LexError struct {
	Offset int
	Line   int
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
}

// Scanner produces tokens from src one at a time.
type Scanner struct {
	src     string
	cursor  int
	line    int
	onError ErrorFunc
	done    bool
}

// New returns a scanner positioned at the start of src. onError may be nil.
func New(src string, onError ErrorFunc) *Scanner {
	return &Scanner{
		src:     src,
		line:    1,
		onError: onError,
	}
}

// Next returns the next token. The final token is Eof; after it has been
// returned ok is false.
func (s *Scanner) Next() (tok Token, ok bool) {
	if s.done {
		return Token{}, false
	}
	for {
		s.skipWhitespace()
		if s.cursor >= len(s.src) {
			s.done = true
			return Token{Kind: Eof, Start: len(s.src), End: len(s.src), Line: s.line}, true
		}

		ch := s.src[s.cursor]
		switch ch {
		case '(':
			return s.emit(LParen, 1), true
		case ')':
			return s.emit(RParen, 1), true
		case '{':
			return s.emit(LBrace, 1), true
		case '}':
			return s.emit(RBrace, 1), true
		case ',':
			return s.emit(Comma, 1), true
		case '.':
			return s.emit(Dot, 1), true
		case '-':
			return s.emit(Minus, 1), true
		case '+':
			return s.emit(Plus, 1), true
		case ';':
			return s.emit(Semicolon, 1), true
		case '*':
			return s.emit(Star, 1), true
		case '/':
			return s.emit(Slash, 1), true
		case '=':
			return s.emitOneOrTwo('=', Eq, EqEq), true
		case '!':
			return s.emitOneOrTwo('=', LNot, Ne), true
		case '<':
			return s.emitOneOrTwo('=', Lt, Lte), true
		case '>':
			return s.emitOneOrTwo('=', Gt, Gte), true
		case '"':
			if tok, ok := s.scanString(); ok {
				return tok, true
			}
			continue
		}

		if isDigit(ch) {
			return s.scanNumber(), true
		}
		if isIdentStart(ch) {
			return s.scanIdent(), true
		}

		r, size := utf8.DecodeRuneInString(s.src[s.cursor:])
		s.report(s.cursor, fmt.Sprintf("Unexpected character: %c", r))
		s.cursor += size
	}
}

func (s *Scanner) report(offset int, msg string) {
	if s.onError != nil {
		s.onError(offset, s.line, msg)
	}
}

func (s *Scanner) emit(kind TokenKind, length int) Token {
	start := s.cursor
	s.cursor += length
	return Token{Kind: kind, Lexeme: s.src[start:s.cursor], Start: start, End: s.cursor, Line: s.line}
}

func (s *Scanner) emitOneOrTwo(second byte, one, two TokenKind) Token {
	if s.peekN(1) == second {
		return s.emit(two, 2)
	}
	return s.emit(one, 1)
}

func (s *Scanner) peekN(n int) byte {
	if s.cursor+n >= len(s.src) {
		return 0
	}
	return s.src[s.cursor+n]
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.src) {
		switch ch := s.src[s.cursor]; {
		case ch == '\n':
			s.line++
			s.cursor++
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f':
			s.cursor++
		case ch == '/' && s.peekN(1) == '/':
			for s.cursor < len(s.src) && s.src[s.cursor] != '\n' {
				s.cursor++
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanString() (Token, bool) {
	start, line := s.cursor, s.line
	s.cursor++ // opening quote
	for s.cursor < len(s.src) && s.src[s.cursor] != '"' {
		if s.src[s.cursor] == '\n' {
			s.line++
		}
		s.cursor++
	}
	if s.cursor >= len(s.src) {
		s.report(s.cursor, "Unterminated string.")
		return Token{}, false
	}
	s.cursor++ // closing quote

	lit := s.src[start+1 : s.cursor-1]
	return Token{
		Kind:    Str,
		Lexeme:  s.src[start:s.cursor],
		Literal: &lit,
		Start:   start,
		End:     s.cursor,
		Line:    line,
	}, true
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.src) && isDigit(s.src[s.cursor]) {
		s.cursor++
	}
	if s.peekN(0) == '.' && isDigit(s.peekN(1)) {
		s.cursor += 2
		for s.cursor < len(s.src) && isDigit(s.src[s.cursor]) {
			s.cursor++
		}
	}

	lexeme := s.src[start:s.cursor]
	// Digits with an optional fraction always parse; overflow yields +Inf.
	f, _ := strconv.ParseFloat(lexeme, 64)
	lit := FormatNumber(f)
	return Token{Kind: Num, Lexeme: lexeme, Literal: &lit, Start: start, End: s.cursor, Line: s.line}
}

func (s *Scanner) scanIdent() Token {
	start := s.cursor
	s.cursor++
	for s.cursor < len(s.src) && isIdentPart(s.src[s.cursor]) {
		s.cursor++
	}
	lexeme := s.src[start:s.cursor]
	kind := Ident
	if kw, ok := Keyword(lexeme); ok {
		kind = kw
	}
	return Token{Kind: kind, Lexeme: lexeme, Start: start, End: s.cursor, Line: s.line}
}

// ScanAll drains a fresh scanner over src, collecting every token up to and
// including Eof and every lexical error.
func ScanAll(src string) ([]Token, []*LexError) {
	var errs []*LexError
	s := New(src, func(offset, line int, msg string) {
		errs = append(errs, &LexError{Offset: offset, Line: line, Msg: msg})
	})
	var tokens []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens, errs
		}
		tokens = append(tokens, tok)
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
