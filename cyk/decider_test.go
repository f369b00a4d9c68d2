package cyk_test

import (
	"strings"
	"testing"

	"github.com/nihei9/cfgequiv/cyk"
	"github.com/nihei9/cfgequiv/diff"
	"github.com/nihei9/cfgequiv/grammar"
	"github.com/nihei9/cfgequiv/parser"
)

func mustDecider(t *testing.T, src string) *cyk.Decider {
	t.Helper()
	ast, err := parser.NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	g, err := grammar.FromAST(ast)
	if err != nil {
		t.Fatalf("FromAST failed: %v", err)
	}
	cnf, err := grammar.ToCNF(g)
	if err != nil {
		t.Fatalf("ToCNF failed: %v", err)
	}
	return cyk.NewDecider(cnf, cyk.Build(cnf))
}

func TestDecider_MatchingParentheses(t *testing.T) {
	d := mustDecider(t, `S -> "(" S ")" S | epsilon ;`)

	for _, s := range []string{"", "()", "()()", "(())", "(()())"} {
		if !d.Accepts(diff.ByteTokens(s)) {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	for _, s := range []string{"(", ")", "(()", "())("} {
		if d.Accepts(diff.ByteTokens(s)) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestDecider_EpsilonOnBothSides(t *testing.T) {
	d := mustDecider(t, `
S -> A B ;
A -> "a" | epsilon ;
B -> "b" | epsilon ;
`)

	for _, s := range []string{"", "a", "b", "ab"} {
		if !d.Accepts(diff.ByteTokens(s)) {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	if d.Accepts(diff.ByteTokens("ba")) {
		t.Errorf("expected %q to be rejected, the grammar is order-sensitive", "ba")
	}
}

func TestDecider_UnitChain(t *testing.T) {
	d := mustDecider(t, `
S -> A ;
A -> B ;
B -> "x" ;
`)

	if !d.Accepts(diff.ByteTokens("x")) {
		t.Errorf("expected %q to be accepted through the unit chain", "x")
	}
	if d.Accepts(diff.ByteTokens("y")) {
		t.Errorf("expected %q to be rejected", "y")
	}
}

func TestDecider_UselessSymbolsDoNotAffectMembership(t *testing.T) {
	d := mustDecider(t, `
S -> "a" ;
U -> U "b" ;
V -> "c" ;
`)

	if !d.Accepts(diff.ByteTokens("a")) {
		t.Errorf("expected %q to be accepted", "a")
	}
	if d.Accepts(diff.ByteTokens("c")) {
		t.Errorf("%q should not be reachable from the start symbol", "c")
	}
}

func TestDecider_LongProduction(t *testing.T) {
	d := mustDecider(t, `S -> "a" "b" "c" "d" ;`)

	if !d.Accepts(diff.ByteTokens("abcd")) {
		t.Errorf("expected %q to be accepted", "abcd")
	}
	if d.Accepts(diff.ByteTokens("abc")) {
		t.Errorf("expected %q to be rejected", "abc")
	}
}

func TestDecider_EmptyInput(t *testing.T) {
	accepting := mustDecider(t, `S -> epsilon ;`)
	if !accepting.Accepts(nil) {
		t.Errorf("expected the empty string to be accepted")
	}

	rejecting := mustDecider(t, `S -> "a" ;`)
	if rejecting.Accepts(nil) {
		t.Errorf("expected the empty string to be rejected")
	}
}
