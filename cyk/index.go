// Package cyk builds a CYK lookup index from a CNF grammar and runs the
// CYK membership decider over it.
package cyk

import "github.com/nihei9/cfgequiv/grammar"

// pairKey packs two interned Symbols (each a 16-bit grammar.Symbol,
// kind and start bits included) into one comparable map key. The shift
// keeps the mapping exact rather than hash-prone, which both satisfies
// §4.2's "mix both components" requirement and sidesteps collisions
// entirely.
type pairKey uint32

func makePairKey(b, c grammar.Symbol) pairKey {
	return pairKey(uint32(b))<<16 | pairKey(uint32(c))
}

// Index holds the two read-only lookup tables §4.2 describes:
// termMap maps a terminal to every nonterminal with a direct A -> t
// rule, and binMap maps an ordered nonterminal pair (B, C) to every A
// with a rule A -> B C.
type Index struct {
	termMap map[grammar.Symbol][]grammar.Symbol
	binMap  map[pairKey][]grammar.Symbol
}

// Build scans g's rules once and returns the Index for it. g must
// already be in Chomsky Normal Form; Build does not validate that.
func Build(g *grammar.Grammar) *Index {
	idx := &Index{
		termMap: map[grammar.Symbol][]grammar.Symbol{},
		binMap:  map[pairKey][]grammar.Symbol{},
	}

	eps := g.Epsilon()
	for _, rule := range g.Rules.Rules() {
		for _, prod := range rule.RHS {
			rhs := prod.RHS()
			switch len(rhs) {
			case 1:
				t := rhs[0]
				if t == eps || t.IsNonTerminal() {
					// epsilon (handled separately by the decider) or a
					// residual unit production (should not occur after
					// CNF, ignored defensively per §4.2).
					continue
				}
				idx.termMap[t] = append(idx.termMap[t], rule.LHS)
			case 2:
				b, c := rhs[0], rhs[1]
				k := makePairKey(b, c)
				idx.binMap[k] = append(idx.binMap[k], rule.LHS)
			}
		}
	}

	return idx
}

// Producers returns the nonterminals with a direct rule A -> t.
func (idx *Index) Producers(t grammar.Symbol) []grammar.Symbol {
	return idx.termMap[t]
}

// BinaryProducers returns the nonterminals with a direct rule A -> B C.
func (idx *Index) BinaryProducers(b, c grammar.Symbol) []grammar.Symbol {
	return idx.binMap[makePairKey(b, c)]
}
