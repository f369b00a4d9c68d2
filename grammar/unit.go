package grammar

// stageUnit implements §4.1.3: for each nonterminal A, compute
// UnitClosure(A) = {A} ∪ {B | A =>* B via unit steps} by searching the
// unit-production graph, then replace A's alternatives with the
// deduplicated union of the non-unit alternatives of every B in that
// closure.
func stageUnit(g *Grammar) (*Grammar, error) {
	out := g.Clone()

	closures := map[Symbol][]Symbol{}
	for _, rule := range g.Rules.Rules() {
		closures[rule.LHS] = unitClosure(g, rule.LHS)
	}

	newRules := NewRuleSet()
	for _, rule := range g.Rules.Rules() {
		for _, b := range closures[rule.LHS] {
			bRule, ok := g.Rules.Get(b)
			if !ok {
				continue
			}
			for _, prod := range bRule.RHS {
				if prod.IsUnit() {
					continue
				}
				p, err := NewProduction(rule.LHS, prod.RHS())
				if err != nil {
					return nil, err
				}
				newRules.Add(p)
			}
		}
	}

	out.Rules = newRules
	if err := out.RebuildSymbolSets(); err != nil {
		return nil, err
	}
	return out, nil
}

func unitClosure(g *Grammar, a Symbol) []Symbol {
	seen := map[Symbol]bool{a: true}
	order := []Symbol{a}
	frontier := []Symbol{a}

	for len(frontier) > 0 {
		b := frontier[0]
		frontier = frontier[1:]

		rule, ok := g.Rules.Get(b)
		if !ok {
			continue
		}
		for _, prod := range rule.RHS {
			if !prod.IsUnit() {
				continue
			}
			target := prod.RHS()[0]
			if seen[target] {
				continue
			}
			seen[target] = true
			order = append(order, target)
			frontier = append(frontier, target)
		}
	}
	return order
}
