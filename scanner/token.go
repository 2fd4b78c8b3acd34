package scanner

import "fmt"

//go:generate stringer -type=TokenKind -linecomment
type TokenKind int

const (
	Ident TokenKind = iota // IDENTIFIER

	LParen    // LEFT_PAREN
	RParen    // RIGHT_PAREN
	LBrace    // LEFT_BRACE
	RBrace    // RIGHT_BRACE
	Dot       // DOT
	Comma     // COMMA
	Semicolon // SEMICOLON

	Plus  // PLUS
	Minus // MINUS
	Star  // STAR
	Slash // SLASH

	EqEq // EQUAL_EQUAL
	Ne   // BANG_EQUAL
	Gt   // GREATER
	Gte  // GREATER_EQUAL
	Lt   // LESS
	Lte  // LESS_EQUAL

	LNot // BANG

	Eq // EQUAL

	Str // STRING
	Num // NUMBER
	Eof // EOF

	And    // AND
	Class  // CLASS
	Else   // ELSE
	False  // FALSE
	For    // FOR
	Fun    // FUN
	If     // IF
	Nil    // NIL
	Or     // OR
	Print  // PRINT
	Return // RETURN
	Super  // SUPER
	This   // THIS
	True   // TRUE
	Var    // VAR
	While  // WHILE
)

var keywords = map[string]TokenKind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Keyword reports the reserved-word kind for an exact identifier match.
func Keyword(word string) (TokenKind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

// Token is a lexeme cut from the source together with its decoded literal.
// Start and End are byte offsets, End exclusive.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal *string
	Start   int
	End     int
	Line    int
}

// String renders the token as "KIND lexeme literal", with null for a
// missing literal.
func (t Token) String() string {
	lit := "null"
	if t.Literal != nil {
		lit = *t.Literal
	}
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, lit)
}
