package grammar

// stageStart implements §4.1.1: choose a fresh nonterminal name by
// trying "S0", "S0_1", "S0_2", ... until one is not yet registered in
// the grammar's symbol table, prepend S0 -> Start, and declare S0 the new
// start. This guarantees the start symbol never occurs on any RHS, so
// a later S0 -> epsilon production is always safe to add.
func stageStart(g *Grammar) (*Grammar, error) {
	out := g.Clone()

	oldStart := out.Start
	freshName := out.FreshNonterminalName("S0")

	newStartSym, err := out.Symbols.RegisterStart(freshName)
	if err != nil {
		return nil, err
	}

	prod, err := NewProduction(newStartSym, []Symbol{oldStart})
	if err != nil {
		return nil, err
	}

	newRules := NewRuleSet()
	newRules.Add(prod)
	for _, rule := range out.Rules.Rules() {
		for _, p := range rule.RHS {
			newRules.Add(p)
		}
	}
	out.Rules = newRules
	out.Start = newStartSym

	if err := out.RebuildSymbolSets(); err != nil {
		return nil, err
	}
	return out, nil
}
