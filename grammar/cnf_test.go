package grammar

import "testing"

func TestStageStart(t *testing.T) {
	g := buildGrammar(t, [][]interface{}{
		{"S", alt("\"a\"", "S"), alt("epsilon")},
	})

	out, err := stageStart(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rule := range out.Rules.Rules() {
		for _, prod := range rule.RHS {
			for _, sym := range prod.RHS() {
				if sym == out.Start {
					t.Fatalf("new start symbol appears on an RHS, violating the START postcondition")
				}
			}
		}
	}

	text, _ := out.Symbols.ToText(out.Start)
	if text != "S0" {
		t.Fatalf("expected fresh start name S0, got %v", text)
	}
}

func TestStageStart_Uniquifies(t *testing.T) {
	g := buildGrammar(t, [][]interface{}{
		{"S0", alt("\"a\"")},
	})

	out, err := stageStart(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, _ := out.Symbols.ToText(out.Start)
	if text != "S0_1" {
		t.Fatalf("expected uniquified start name S0_1, got %v", text)
	}
}

func TestStageDel_EpsilonHandling(t *testing.T) {
	// S3: S -> A B ; A -> "a" | epsilon ; B -> "b" | epsilon ;
	g := buildGrammar(t, [][]interface{}{
		{"S", alt("A", "B")},
		{"A", alt("\"a\""), alt("epsilon")},
		{"B", alt("\"b\""), alt("epsilon")},
	})

	started, err := stageStart(g)
	if err != nil {
		t.Fatalf("START failed: %v", err)
	}
	deled, err := stageDel(started)
	if err != nil {
		t.Fatalf("DEL failed: %v", err)
	}

	eps := deled.Epsilon()
	for _, rule := range deled.Rules.Rules() {
		for _, prod := range rule.RHS {
			if prod.IsEpsilon(eps) && rule.LHS != deled.Start {
				t.Fatalf("found an epsilon production outside the start symbol: %v", rule.LHS)
			}
			rhs := prod.RHS()
			if len(rhs) > 1 {
				for _, s := range rhs {
					if s == eps {
						t.Fatalf("epsilon appears mixed with other symbols")
					}
				}
			}
		}
	}

	startRule, ok := deled.Rules.Get(deled.Start)
	if !ok {
		t.Fatalf("no rule found for start symbol")
	}
	found := false
	for _, prod := range startRule.RHS {
		if prod.IsEpsilon(eps) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the start symbol to retain an epsilon alternative, since S derives the empty string")
	}
}

func TestStageDel_RejectsMixedEpsilon(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.SetStart("S"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := g.Symbols.ToSymbol("S")
	a, err := g.Symbols.RegisterNonTerminal("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prod, err := NewProduction(s, []Symbol{a, g.Epsilon()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Rules.Add(prod)
	if err := g.RebuildSymbolSets(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := stageDel(g); err == nil {
		t.Fatalf("expected DEL to reject a production mixing epsilon with other symbols")
	}
}

func TestStageUnit_CollapsesChain(t *testing.T) {
	// S4: S -> A ; A -> B ; B -> "x" ;
	g := buildGrammar(t, [][]interface{}{
		{"S", alt("A")},
		{"A", alt("B")},
		{"B", alt("\"x\"")},
	})

	started, err := stageStart(g)
	if err != nil {
		t.Fatalf("START failed: %v", err)
	}
	deled, err := stageDel(started)
	if err != nil {
		t.Fatalf("DEL failed: %v", err)
	}
	unitFree, err := stageUnit(deled)
	if err != nil {
		t.Fatalf("UNIT failed: %v", err)
	}

	for _, rule := range unitFree.Rules.Rules() {
		for _, prod := range rule.RHS {
			if prod.IsUnit() {
				t.Fatalf("found a unit production after UNIT: %v -> %v", rule.LHS, prod.RHS())
			}
		}
	}
}

func TestStageUseless_RemovesDeadAndUnreachable(t *testing.T) {
	// S5: S -> "a" ; U -> U "b" ; V -> "c" ;
	g := buildGrammar(t, [][]interface{}{
		{"S", alt("\"a\"")},
		{"U", alt("U", "\"b\"")},
		{"V", alt("\"c\"")},
	})

	out, err := stageUseless(g)
	if err != nil {
		t.Fatalf("USELESS failed: %v", err)
	}

	if out.Rules.Len() != 1 {
		t.Fatalf("expected exactly one surviving rule, got %d", out.Rules.Len())
	}
	rule, ok := out.Rules.Get(g.Start)
	if !ok {
		t.Fatalf("expected the start rule to survive")
	}
	if len(rule.RHS) != 1 {
		t.Fatalf("expected exactly one alternative to survive")
	}
}

func TestStageBin_Binarizes(t *testing.T) {
	// S6: S -> "a" "b" "c" "d" ;
	g := buildGrammar(t, [][]interface{}{
		{"S", alt("\"a\"", "\"b\"", "\"c\"", "\"d\"")},
	})

	termed, err := stageTerm(g)
	if err != nil {
		t.Fatalf("TERM failed: %v", err)
	}
	bined, err := stageBin(termed)
	if err != nil {
		t.Fatalf("BIN failed: %v", err)
	}

	for _, rule := range bined.Rules.Rules() {
		for _, prod := range rule.RHS {
			if prod.Len() > 2 {
				t.Fatalf("found a production of length %d after BIN", prod.Len())
			}
		}
	}
}

func TestToCNF_IsChomskyNormalForm(t *testing.T) {
	g := buildGrammar(t, [][]interface{}{
		{"S", alt("A", "B"), alt("\"a\"", "\"b\"", "\"c\"", "\"d\"")},
		{"A", alt("\"a\""), alt("epsilon")},
		{"B", alt("\"b\""), alt("epsilon")},
	})

	cnf, err := ToCNF(g)
	if err != nil {
		t.Fatalf("ToCNF failed: %v", err)
	}

	eps := cnf.Epsilon()
	for _, rule := range cnf.Rules.Rules() {
		for _, prod := range rule.RHS {
			rhs := prod.RHS()
			switch len(rhs) {
			case 1:
				if rhs[0].IsNonTerminal() {
					t.Fatalf("length-1 production %v -> %v is not terminal-only", rule.LHS, rhs)
				}
			case 2:
				for _, s := range rhs {
					if s.IsTerminal() && s != eps {
						t.Fatalf("length-2 production %v -> %v contains a terminal", rule.LHS, rhs)
					}
				}
			default:
				t.Fatalf("production %v -> %v has illegal length %d", rule.LHS, rhs, len(rhs))
			}
		}
	}
}
