package analysis

import (
	"testing"

	"github.com/kr/pretty"

	"lox/parser"
)

func check(t *testing.T, src string) []string {
	t.Helper()
	stmts, err := parser.ParseProgram(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var msgs []string
	for _, err := range Check(stmts) {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"clean", `var a = 1; var b = a * 2; print a + b; print "x" + "y";`, nil},
		{"undefined", `print q;`, []string{"Variable q is not defined"}},
		{"assign undefined", `q = 1;`, []string{"Variable q is not defined"}},
		{"add mismatch", `print 1 + "a";`, []string{"Cannot add number and string"}},
		{"subtract mismatch", `print "a" - 1;`, []string{"Cannot subtract number from string"}},
		{"multiply mismatch", `print nil * 2;`, []string{"Cannot multiply nil and number"}},
		{"divide mismatch", `print 2 / true;`, []string{"Cannot divide number by boolean"}},
		{"compare strings", `print "a" < "b";`, []string{"Cannot compare string < string"}},
		{"negate string", `print -"a";`, []string{"Cannot convert string to a number"}},
		{"not string", `print !"a";`, []string{"Cannot convert string to a boolean"}},
		{"not nil", `print !nil; print !0;`, nil},
		{"logical", `print true and 1;`, []string{"Cannot apply && to boolean and number"}},
		{"equality any", `print 1 == "1"; print nil != false;`, nil},
		{"no cascade", `print (q + 1) * 2;`, []string{"Variable q is not defined"}},
		{"block scope", `{ var inner = 1; } print inner;`, []string{"Variable inner is not defined"}},
		{"shadow", `var x = 1; { var x = "s"; print x + "t"; } print x + 2;`, nil},
		{"retyped", `var x = 1; x = "s"; print x + 1;`, []string{"Cannot add string and number"}},
		{"redeclare keeps type", `var x = "s"; var x; print x + "t";`, nil},
		{"assign expr", `var x; print (x = 2) + x;`, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := check(t, test.src)
			if diff := pretty.Diff(got, test.want); len(diff) > 0 {
				t.Errorf("%s:\n%s", test.src, diff)
			}
		})
	}
}

func TestSymbolTypesTableFind(t *testing.T) {
	global := &SymbolTypesTable{Symbols: map[Symbol]Type{"a": Real, "b": String}}
	inner := &SymbolTypesTable{Parent: global, Symbols: map[Symbol]Type{"a": Bool}}

	if got, ok := inner.find("a"); !ok || got != Bool {
		t.Errorf("find(a) = %v, %v; want boolean", got, ok)
	}
	if got, ok := inner.find("b"); !ok || got != String {
		t.Errorf("find(b) = %v, %v; want string", got, ok)
	}
	if inner.contains("c") {
		t.Error("contains(c) = true")
	}
}
