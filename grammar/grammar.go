package grammar

import "fmt"

// Grammar is the full data model described by §3: an ordered rule set
// plus the terminal/nonterminal name sets kept consistent with it by
// rebuildSymbolSets, plus the interned symbol table backing both.
type Grammar struct {
	Symbols     *SymbolTable
	Rules       *RuleSet
	Start       Symbol
	Terminals   map[string]struct{}
	Nonterminals map[string]struct{}

	epsilon Symbol
}

// New creates an empty grammar, registering the reserved epsilon
// terminal up front so every stage can refer to g.Epsilon().
func New() (*Grammar, error) {
	tab := NewSymbolTable()
	eps, err := tab.RegisterTerminal(EpsilonName)
	if err != nil {
		return nil, err
	}
	return &Grammar{
		Symbols:      tab,
		Rules:        NewRuleSet(),
		Terminals:    map[string]struct{}{},
		Nonterminals: map[string]struct{}{},
		epsilon:      eps,
	}, nil
}

// Epsilon returns the interned epsilon terminal symbol.
func (g *Grammar) Epsilon() Symbol { return g.epsilon }

// SetStart declares name as the grammar's start nonterminal. name must
// already be registered as a nonterminal (or not yet registered, in
// which case it is registered fresh).
func (g *Grammar) SetStart(name string) error {
	sym, err := g.Symbols.RegisterStart(name)
	if err != nil {
		return err
	}
	g.Start = sym
	return nil
}

// RebuildSymbolSets recomputes Terminals and Nonterminals from the
// current Rules, per §3's invariant that the two sets stay consistent
// with rules after any stage that alters them. It also validates that
// the two sets are disjoint and that every RHS symbol is accounted for.
func (g *Grammar) RebuildSymbolSets() error {
	terms := map[string]struct{}{}
	nonterms := map[string]struct{}{}

	addSym := func(sym Symbol) error {
		text, ok := g.Symbols.ToText(sym)
		if !ok {
			return fmt.Errorf("grammar: symbol %v has no registered name", sym)
		}
		if sym.IsTerminal() {
			if text != EpsilonName {
				terms[text] = struct{}{}
			}
		} else {
			nonterms[text] = struct{}{}
		}
		return nil
	}

	for _, rule := range g.Rules.Rules() {
		if err := addSym(rule.LHS); err != nil {
			return err
		}
		for _, prod := range rule.RHS {
			for _, sym := range prod.RHS() {
				if err := addSym(sym); err != nil {
					return err
				}
			}
		}
	}

	for name := range terms {
		if _, ok := nonterms[name]; ok {
			return fmt.Errorf("grammar: %q is used as both a terminal and a nonterminal", name)
		}
	}

	g.Terminals = terms
	g.Nonterminals = nonterms
	return nil
}

// FreshNonterminalName tries base, then base+"_1", base+"_2", ... until
// it finds a name not yet registered in the grammar's symbol table
// (terminal or nonterminal, including names left over from earlier
// stages), per the fresh-name discipline in §4.1.1/§4.1.5/§4.1.6.
func (g *Grammar) FreshNonterminalName(base string) string {
	if !g.Symbols.Has(base) {
		return base
	}
	for i := 1; ; i++ {
		cand := fmt.Sprintf("%s_%d", base, i)
		if !g.Symbols.Has(cand) {
			return cand
		}
	}
}

// Clone performs a deep copy of the grammar's rule set (the symbol
// table is shared by reference since it is append-only and every
// Symbol value embeds its own identity).
func (g *Grammar) Clone() *Grammar {
	return &Grammar{
		Symbols:      g.Symbols,
		Rules:        g.Rules.Clone(),
		Start:        g.Start,
		Terminals:    cloneSet(g.Terminals),
		Nonterminals: cloneSet(g.Nonterminals),
		epsilon:      g.epsilon,
	}
}

func cloneSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
