package grammar

// stageUseless implements §4.1.4: two fixed-point passes, generating
// then reachable, each dropping whole rules whose LHS fails the test
// and pruning alternatives that mention a symbol which fails it.
func stageUseless(g *Grammar) (*Grammar, error) {
	out := g.Clone()

	gen := computeGenerating(g)

	genRules := NewRuleSet()
	for _, rule := range g.Rules.Rules() {
		if !gen[rule.LHS] {
			continue
		}
		for _, prod := range rule.RHS {
			if !allGenerating(prod, gen) {
				continue
			}
			genRules.Add(prod)
		}
	}

	reach := computeReachable(genRules, out.Start)

	finalRules := NewRuleSet()
	for _, rule := range genRules.Rules() {
		if !reach[rule.LHS] {
			continue
		}
		for _, prod := range rule.RHS {
			if !allReachable(prod, reach) {
				continue
			}
			finalRules.Add(prod)
		}
	}

	out.Rules = finalRules
	if err := out.RebuildSymbolSets(); err != nil {
		return nil, err
	}
	return out, nil
}

func computeGenerating(g *Grammar) map[Symbol]bool {
	eps := g.Epsilon()
	gen := map[Symbol]bool{}

	for {
		changed := false
		for _, rule := range g.Rules.Rules() {
			// The original grammar-tool lineage this stage is modeled
			// on marks `changed` even when the LHS is already in GEN;
			// that costs an extra idle pass but does not affect the
			// fixed point, so we keep the cheaper early-continue here.
			if gen[rule.LHS] {
				continue
			}
			for _, prod := range rule.RHS {
				rhs := prod.RHS()
				if len(rhs) == 1 && rhs[0] == eps {
					gen[rule.LHS] = true
					changed = true
					break
				}
				if allGenerating(prod, gen) {
					gen[rule.LHS] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}
	return gen
}

func allGenerating(prod Production, gen map[Symbol]bool) bool {
	for _, sym := range prod.RHS() {
		if sym.IsNonTerminal() && !gen[sym] {
			return false
		}
	}
	return true
}

func computeReachable(rules *RuleSet, start Symbol) map[Symbol]bool {
	reach := map[Symbol]bool{}
	if _, ok := rules.Get(start); !ok {
		// The start symbol was dropped as non-generating; nothing is
		// reachable and the resulting language is empty.
		return reach
	}
	reach[start] = true
	frontier := []Symbol{start}
	for len(frontier) > 0 {
		a := frontier[0]
		frontier = frontier[1:]
		rule, ok := rules.Get(a)
		if !ok {
			continue
		}
		for _, prod := range rule.RHS {
			for _, sym := range prod.RHS() {
				if !sym.IsNonTerminal() || reach[sym] {
					continue
				}
				reach[sym] = true
				frontier = append(frontier, sym)
			}
		}
	}
	return reach
}

func allReachable(prod Production, reach map[Symbol]bool) bool {
	for _, sym := range prod.RHS() {
		if sym.IsNonTerminal() && !reach[sym] {
			return false
		}
	}
	return true
}
