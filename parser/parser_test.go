package parser

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"golang.org/x/xerrors"
)

func TestParseExpressionFormat(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1", "1.0"},
		{`"hello"`, "hello"},
		{"true", "true"},
		{"nil", "nil"},
		{"x", "x"},
		{"1-2-3", "(- (- 1.0 2.0) 3.0)"},
		{"1+2*3", "(+ 1.0 (* 2.0 3.0))"},
		{"1*2+3", "(+ (* 1.0 2.0) 3.0)"},
		{"8/4/2", "(/ (/ 8.0 4.0) 2.0)"},
		{"-1+2", "(+ (- 1.0) 2.0)"},
		{"!true", "(! true)"},
		{"!!false", "(! (! false))"},
		{"- -3", "(- (- 3.0))"},
		{"1 + -2 * 3", "(+ 1.0 (* (- 2.0) 3.0))"},
		{"(1+2)*3", "(* (group (+ 1.0 2.0)) 3.0)"},
		{"((1))", "(group (group 1.0))"},
		{"-(1)", "(- (group 1.0))"},
		{"1 < 2 == 3 >= 4", "(== (< 1.0 2.0) (>= 3.0 4.0))"},
		{"1 != 2 == true", "(== (!= 1.0 2.0) true)"},
		{"a and b or c and d", "(|| (&& a b) (&& c d))"},
		{"a or b or c", "(|| (|| a b) c)"},
		{"a == b and c", "(&& (== a b) c)"},
		{"a = 1", "a = 1.0"},
		{"a = b = 1 + 2", "a = b = (+ 1.0 2.0)"},
		{"a = b or c", "a = (|| b c)"},
		{"12.5 * 2", "(* 12.5 2.0)"},
		{"10000000", "1.0E7"},
	}
	for _, tt := range tests {
		n, err := ParseExpression(tt.src)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.src, err)
			continue
		}
		if got := Format(n); got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestFormatIgnoresWhitespace(t *testing.T) {
	a, err := ParseExpression("(1+2)*-x")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseExpression("  ( 1 +\n 2 ) *  - x // trailing comment")
	if err != nil {
		t.Fatal(err)
	}
	if Format(a) != Format(b) {
		t.Fatalf("formats differ: %s vs %s", Format(a), Format(b))
	}
	if diff := pretty.Diff(a, b); len(diff) != 0 {
		t.Fatalf("trees differ:\n%s", strings.Join(diff, "\n"))
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, src := range []string{"1+2*3", "(1+2)*3", "-a == !b", "a = b = c"} {
		n, err := ParseExpression(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		again, err := ParseExpression(src + " ")
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if Format(n) != Format(again) {
			t.Errorf("%q: %s != %s", src, Format(n), Format(again))
		}
	}
}

func TestParseTree(t *testing.T) {
	n, err := ParseExpression("-1 + 2")
	if err != nil {
		t.Fatal(err)
	}
	want := &BinaryNode{
		Op:    Plus,
		Left:  &UnaryNode{Op: Negative, Operand: &ValueNode{Value: RealValue(1)}},
		Right: &ValueNode{Value: RealValue(2)},
	}
	if diff := pretty.Diff(n, want); len(diff) != 0 {
		t.Fatalf("tree differs:\n%s", strings.Join(diff, "\n"))
	}
}

func TestExpressionLeavesTerminator(t *testing.T) {
	p := New("1 + 2; 3")
	if _, err := p.Expression(); err != nil {
		t.Fatal(err)
	}
	if tok := p.next(); tok.Lexeme != ";" {
		t.Fatalf("expected ';' to remain, got %v", tok)
	}
}

func TestParseExpressionErrors(t *testing.T) {
	tests := []struct {
		src string
		msg string
	}{
		{"1+2)", "Unmatched right parenthesis."},
		{"(1+2", "Unclosed left parenthesis."},
		{")", "Unexpected token ')', expected an operand."},
		{"()", "Unexpected token ')', expected an operand."},
		{"", "Expect expression before end of input."},
		{"1 +", "Expect expression before end of input."},
		{"1 2", "Unexpected token '2' after operand."},
		{"1 = 2", "Left side of assignment is not a variable."},
		{"(a) = 2", "Left side of assignment is not a variable."},
		{"a + b = 2", "Left side of assignment is not a variable."},
		{"{", "Unexpected token '{', expected an operand."},
	}
	for _, tt := range tests {
		_, err := ParseExpression(tt.src)
		if err == nil {
			t.Errorf("%q: expected error", tt.src)
			continue
		}
		var perr *ParseError
		if !xerrors.As(err, &perr) {
			t.Errorf("%q: expected *ParseError, got %T", tt.src, err)
			continue
		}
		if perr.Msg != tt.msg {
			t.Errorf("%q: got %q, want %q", tt.src, perr.Msg, tt.msg)
		}
	}
}

func TestParseErrorText(t *testing.T) {
	_, err := ParseExpression("1 +\n\n)")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "[line 3] Error: Unexpected token ')', expected an operand." {
		t.Fatalf("unexpected error text %q", got)
	}
}

func TestParseProgram(t *testing.T) {
	src := `
var a;
var b = 1 + 2;
print a;
a = b * 2;
b;
-b;
{
  var c = a;
  { print c; }
}
{}
`
	stmts, err := ParseProgram(src)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, s := range stmts {
		got = append(got, Format(s))
	}
	want := []string{
		"var a;",
		"var b = (+ 1.0 2.0);",
		"print a;",
		"a = (* b 2.0);",
		"b;",
		"(- b);",
		"{\n  var c = a;\n  {\n    print c;\n  }\n}",
		"{}",
	}
	if diff := pretty.Diff(got, want); len(diff) != 0 {
		t.Fatalf("statements differ:\n%s", strings.Join(diff, "\n"))
	}
}

func TestParseStatementKinds(t *testing.T) {
	stmts, err := ParseProgram("x = 1; x == 1; x + 1;")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := stmts[0].(*AssignStmt); !ok {
		t.Errorf("expected *AssignStmt, got %T", stmts[0])
	}
	for _, s := range stmts[1:] {
		if _, ok := s.(*ExprStmt); !ok {
			t.Errorf("expected *ExprStmt, got %T", s)
		}
	}
	if got := Format(stmts[1]); got != "(== x 1.0);" {
		t.Errorf("got %s", got)
	}
}

func TestParseStatementErrors(t *testing.T) {
	tests := []struct {
		src string
		msg string
	}{
		{"print 1", "Expected SEMICOLON but got EOF."},
		{"var 1;", "Expected IDENTIFIER but got NUMBER."},
		{"var x = ;", "Expect expression before ';'."},
		{"x = 1", "Expected SEMICOLON but got EOF."},
		{"{ print 1;", "Expected RIGHT_BRACE but got EOF."},
		{"1 + 2 }", "Unexpected token '}' after operand."},
	}
	for _, tt := range tests {
		_, err := ParseProgram(tt.src)
		var perr *ParseError
		if !xerrors.As(err, &perr) {
			t.Errorf("%q: expected *ParseError, got %v", tt.src, err)
			continue
		}
		if perr.Msg != tt.msg {
			t.Errorf("%q: got %q, want %q", tt.src, perr.Msg, tt.msg)
		}
	}
}

func TestStatementMissingSemicolon(t *testing.T) {
	for _, src := range []string{"1 + 2", "print 1", "var x", "var x = 1", "x = 1", "x + 1"} {
		stmt, err := New(src).Statement()
		if err == nil {
			t.Errorf("%q: expected an error", src)
		}
		if stmt != nil {
			t.Errorf("%q: got statement %s alongside error", src, Format(stmt))
		}
	}
}

func TestParserCollectsLexErrors(t *testing.T) {
	p := New("1 @ + 2;")
	stmts, err := p.Program()
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 1 || Format(stmts[0]) != "(+ 1.0 2.0);" {
		t.Fatalf("unexpected statements %v", stmts)
	}
	if len(p.LexErrors()) != 1 {
		t.Fatalf("expected one lexical error, got %v", p.LexErrors())
	}
}

func TestPrecedenceTable(t *testing.T) {
	tests := []struct {
		op   Operator
		want int
	}{
		{Negative, 3},
		{LogicalNot, 3},
		{Times, 5},
		{Plus, 6},
		{LessThanOrEqualTo, 9},
		{NotEqualTo, 10},
		{LogicalAnd, 14},
		{LogicalOr, 15},
		{Assign, 16},
		{Group, PrecGroup},
	}
	for _, tt := range tests {
		if got := Precedence(tt.op); got != tt.want {
			t.Errorf("Precedence(%s) = %d, want %d", tt.op.Symbol(), got, tt.want)
		}
	}
}
