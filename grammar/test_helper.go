package grammar

import "testing"

// buildGrammar is a small test-only DSL: each entry is (lhs, alt1, alt2,
// ...), where each alt is itself a list of RHS tokens. A token prefixed
// with '"' is registered as a terminal (sans the quote marks); the
// literal token "epsilon" becomes the reserved epsilon symbol; anything
// else is a nonterminal reference. The first entry's LHS becomes the
// start symbol.
func buildGrammar(t *testing.T, rules [][]interface{}) *Grammar {
	t.Helper()

	g, err := New()
	if err != nil {
		t.Fatalf("failed to create grammar: %v", err)
	}

	if len(rules) == 0 {
		t.Fatalf("buildGrammar requires at least one rule")
	}
	startName := rules[0][0].(string)
	if err := g.SetStart(startName); err != nil {
		t.Fatalf("failed to set start: %v", err)
	}
	for _, r := range rules {
		if _, err := g.Symbols.RegisterNonTerminal(r[0].(string)); err != nil {
			t.Fatalf("failed to register nonterminal: %v", err)
		}
	}

	for _, r := range rules {
		lhsName := r[0].(string)
		lhs, _ := g.Symbols.ToSymbol(lhsName)
		for _, altAny := range r[1:] {
			alt := altAny.([]string)
			var rhs []Symbol
			if len(alt) == 1 && alt[0] == "epsilon" {
				rhs = []Symbol{g.Epsilon()}
			} else {
				for _, tok := range alt {
					if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
						sym, err := g.Symbols.RegisterTerminal(tok[1 : len(tok)-1])
						if err != nil {
							t.Fatalf("failed to register terminal: %v", err)
						}
						rhs = append(rhs, sym)
					} else {
						sym, err := g.Symbols.RegisterNonTerminal(tok)
						if err != nil {
							t.Fatalf("failed to register nonterminal: %v", err)
						}
						rhs = append(rhs, sym)
					}
				}
			}
			prod, err := NewProduction(lhs, rhs)
			if err != nil {
				t.Fatalf("failed to build production: %v", err)
			}
			g.Rules.Add(prod)
		}
	}

	if err := g.RebuildSymbolSets(); err != nil {
		t.Fatalf("failed to rebuild symbol sets: %v", err)
	}
	return g
}

func alt(toks ...string) []string { return toks }
