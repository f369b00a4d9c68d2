package grammar

import "strings"

// stageTerm implements §4.1.5: every terminal occurrence inside a long
// (length >= 2) production is replaced by a fresh nonterminal shared
// across the whole grammar for that terminal, plus one rule
// T_xxx -> terminal. Length-1 productions (including the possible
// Start -> epsilon survivor) are already CNF-legal and untouched.
func stageTerm(g *Grammar) (*Grammar, error) {
	out := g.Clone()
	helpers := map[Symbol]Symbol{}
	newRules := NewRuleSet()

	helperFor := func(t Symbol) (Symbol, error) {
		if h, ok := helpers[t]; ok {
			return h, nil
		}
		text, ok := out.Symbols.ToText(t)
		if !ok {
			return symbolNil, structuralError("TERM", "terminal %v has no registered name", t)
		}
		base := "T_" + sanitizeForName(text)
		name := out.FreshNonterminalName(base)
		h, err := out.Symbols.RegisterNonTerminal(name)
		if err != nil {
			return symbolNil, err
		}
		helpers[t] = h
		p, err := NewProduction(h, []Symbol{t})
		if err != nil {
			return symbolNil, err
		}
		newRules.Add(p)
		return h, nil
	}

	for _, rule := range g.Rules.Rules() {
		for _, prod := range rule.RHS {
			rhs := prod.RHS()
			if len(rhs) < 2 {
				newRules.Add(prod)
				continue
			}
			newRHS := make([]Symbol, 0, len(rhs))
			for _, sym := range rhs {
				if sym.IsTerminal() {
					h, err := helperFor(sym)
					if err != nil {
						return nil, err
					}
					newRHS = append(newRHS, h)
				} else {
					newRHS = append(newRHS, sym)
				}
			}
			p, err := NewProduction(rule.LHS, newRHS)
			if err != nil {
				return nil, err
			}
			newRules.Add(p)
		}
	}

	out.Rules = newRules
	if err := out.RebuildSymbolSets(); err != nil {
		return nil, err
	}
	return out, nil
}

func sanitizeForName(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
