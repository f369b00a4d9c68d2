package grammar

// stageDel implements §4.1.2: eliminate epsilon productions while
// preserving the language (modulo epsilon itself, whose fate is the
// single surviving Start -> epsilon exception of §3).
func stageDel(g *Grammar) (*Grammar, error) {
	eps := g.Epsilon()

	// A stray epsilon mixed into a longer production is malformed input
	// (§3: "epsilon mixed with other symbols is an error -- abort").
	for _, rule := range g.Rules.Rules() {
		for _, prod := range rule.RHS {
			rhs := prod.RHS()
			if len(rhs) <= 1 {
				continue
			}
			for _, sym := range rhs {
				if sym == eps {
					return nil, structuralError("DEL", "epsilon appears mixed with other symbols in a production of %v", rule.LHS)
				}
			}
		}
	}

	nullable, err := computeNullable(g)
	if err != nil {
		return nil, err
	}

	out := g.Clone()
	newRules := NewRuleSet()

	for _, rule := range g.Rules.Rules() {
		for _, prod := range rule.RHS {
			rhs := prod.RHS()
			if len(rhs) == 1 && rhs[0] == eps {
				// The epsilon alternative itself is dropped; it is
				// reintroduced below only for the start symbol, and
				// only if the start is nullable.
				continue
			}

			positions := make([]int, 0, len(rhs))
			for i, sym := range rhs {
				if sym.IsNonTerminal() && nullable[sym] {
					positions = append(positions, i)
				}
			}
			k := len(positions)
			if k > 63 {
				return nil, structuralError("DEL", "production of %v has %d nullable positions, exceeding the bitmask enumeration limit", rule.LHS, k)
			}

			total := 1 << uint(k)
			for mask := 0; mask < total; mask++ {
				dropped := make(map[int]bool, k)
				for bit := 0; bit < k; bit++ {
					if mask&(1<<uint(bit)) != 0 {
						dropped[positions[bit]] = true
					}
				}
				var newRHS []Symbol
				for i, sym := range rhs {
					if dropped[i] {
						continue
					}
					newRHS = append(newRHS, sym)
				}
				if len(newRHS) == 0 {
					if rule.LHS == out.Start && nullable[out.Start] {
						p, err := NewProduction(rule.LHS, []Symbol{eps})
						if err != nil {
							return nil, err
						}
						newRules.Add(p)
					}
					continue
				}
				p, err := NewProduction(rule.LHS, newRHS)
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

// computeNullable finds the least fixed point of §4.1.2's Nullable
// relation: A is nullable if some alternative of A is epsilon, or some
// alternative of A consists entirely of nullable nonterminals.
func computeNullable(g *Grammar) (map[Symbol]bool, error) {
	eps := g.Epsilon()
	nullable := map[Symbol]bool{}

	for {
		changed := false
		for _, rule := range g.Rules.Rules() {
			if nullable[rule.LHS] {
				continue
			}
			for _, prod := range rule.RHS {
				rhs := prod.RHS()
				if len(rhs) == 1 && rhs[0] == eps {
					nullable[rule.LHS] = true
					changed = true
					break
				}
				allNullable := true
				for _, sym := range rhs {
					if sym.IsTerminal() || !nullable[sym] {
						allNullable = false
						break
					}
				}
				if allNullable {
					nullable[rule.LHS] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}
	return nullable, nil
}
