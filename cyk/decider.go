package cyk

import "github.com/nihei9/cfgequiv/grammar"

// Decider runs the CYK membership algorithm (§4.3) over a CNF grammar
// and its Index.
type Decider struct {
	g   *grammar.Grammar
	idx *Index
}

// NewDecider pairs a CNF grammar with its Index for repeated queries.
func NewDecider(g *grammar.Grammar, idx *Index) *Decider {
	return &Decider{g: g, idx: idx}
}

// Accepts reports whether tokens is in the language of the decider's
// grammar. Tokens are matched against terminal names by exact string
// equality; §4.4 leaves the token-alignment convention (one token per
// byte, by default) to the caller.
func (d *Decider) Accepts(tokens []string) bool {
	n := len(tokens)
	if n == 0 {
		return d.startDerivesEpsilon()
	}

	// table[i][l-1] holds the set of nonterminals deriving
	// tokens[i:i+l]. Each table entry is released when Accepts
	// returns; nothing here outlives the call (§5's no-global-cache
	// policy).
	table := make([][]map[grammar.Symbol]struct{}, n)
	for i := 0; i < n; i++ {
		table[i] = make([]map[grammar.Symbol]struct{}, n-i)
	}

	for i := 0; i < n; i++ {
		set := map[grammar.Symbol]struct{}{}
		if sym, ok := d.g.Symbols.ToSymbol(tokens[i]); ok && sym.IsTerminal() {
			for _, a := range d.idx.Producers(sym) {
				set[a] = struct{}{}
			}
		}
		table[i][0] = set
	}

	for length := 2; length <= n; length++ {
		for i := 0; i <= n-length; i++ {
			set := map[grammar.Symbol]struct{}{}
			for split := 1; split < length; split++ {
				left := table[i][split-1]
				right := table[i+split][length-split-1]
				for b := range left {
					for c := range right {
						for _, a := range d.idx.BinaryProducers(b, c) {
							set[a] = struct{}{}
						}
					}
				}
			}
			table[i][length-1] = set
		}
	}

	_, ok := table[0][n-1][d.g.Start]
	return ok
}

func (d *Decider) startDerivesEpsilon() bool {
	rule, ok := d.g.Rules.Get(d.g.Start)
	if !ok {
		return false
	}
	eps := d.g.Epsilon()
	for _, prod := range rule.RHS {
		if prod.IsEpsilon(eps) {
			return true
		}
	}
	return false
}
