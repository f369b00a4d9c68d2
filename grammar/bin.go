package grammar

// stageBin implements §4.1.6: right-binarize every production of
// length >= 3 using fresh helper nonterminals ("X", uniquified). After
// TERM has run, every symbol in these new productions is a
// nonterminal, so the result is legal CNF.
func stageBin(g *Grammar) (*Grammar, error) {
	out := g.Clone()
	newRules := NewRuleSet()

	for _, rule := range g.Rules.Rules() {
		for _, prod := range rule.RHS {
			rhs := prod.RHS()
			m := len(rhs)
			if m <= 2 {
				newRules.Add(prod)
				continue
			}

			helpers := make([]Symbol, m-2)
			for i := 0; i < m-2; i++ {
				name := out.FreshNonterminalName("X")
				h, err := out.Symbols.RegisterNonTerminal(name)
				if err != nil {
					return nil, err
				}
				helpers[i] = h
			}

			first, err := NewProduction(rule.LHS, []Symbol{rhs[0], helpers[0]})
			if err != nil {
				return nil, err
			}
			newRules.Add(first)

			for i := 0; i < m-3; i++ {
				p, err := NewProduction(helpers[i], []Symbol{rhs[i+1], helpers[i+1]})
				if err != nil {
					return nil, err
				}
				newRules.Add(p)
			}

			last, err := NewProduction(helpers[m-3], []Symbol{rhs[m-2], rhs[m-1]})
			if err != nil {
				return nil, err
			}
			newRules.Add(last)
		}
	}

	out.Rules = newRules
	if err := out.RebuildSymbolSets(); err != nil {
		return nil, err
	}
	return out, nil
}
