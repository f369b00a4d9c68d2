package grammar

import (
	"fmt"
	"sort"
)

// Production is one alternative right-hand side: an ordered sequence of
// Symbols. The empty-string production is represented as the single
// Symbol registered under EpsilonName.
type Production struct {
	lhs Symbol
	rhs []Symbol
}

// NewProduction builds a Production, rejecting nil symbols.
func NewProduction(lhs Symbol, rhs []Symbol) (Production, error) {
	if lhs.isNil() {
		return Production{}, fmt.Errorf("grammar: production LHS must not be nil")
	}
	for _, sym := range rhs {
		if sym.isNil() {
			return Production{}, fmt.Errorf("grammar: production RHS contains a nil symbol; LHS: %v", lhs)
		}
	}
	cp := make([]Symbol, len(rhs))
	copy(cp, rhs)
	return Production{lhs: lhs, rhs: cp}, nil
}

// LHS returns the production's left-hand-side nonterminal.
func (p Production) LHS() Symbol { return p.lhs }

// RHS returns the production's right-hand side. Callers must not mutate
// the returned slice.
func (p Production) RHS() []Symbol { return p.rhs }

// Len is the number of symbols on the RHS.
func (p Production) Len() int { return len(p.rhs) }

// IsEpsilon reports whether p is the length-1 epsilon production.
func (p Production) IsEpsilon(epsilon Symbol) bool {
	return len(p.rhs) == 1 && p.rhs[0] == epsilon
}

// IsUnit reports whether p is a single nonterminal.
func (p Production) IsUnit() bool {
	return len(p.rhs) == 1 && p.rhs[0].IsNonTerminal()
}

// key is a canonical, order-sensitive identity for deduplication: two
// productions with the same LHS and the same sequence of (kind, name)
// pairs collapse to the same key, independent of how many times each
// was derived during a transformation stage.
func (p Production) key() string {
	buf := make([]byte, 0, 2*(len(p.rhs)+1))
	buf = appendSymbolBytes(buf, p.lhs)
	for _, s := range p.rhs {
		buf = appendSymbolBytes(buf, s)
	}
	return string(buf)
}

func appendSymbolBytes(buf []byte, s Symbol) []byte {
	return append(buf, byte(uint16(s)>>8), byte(uint16(s)&0xff))
}

// Rule maps one LHS nonterminal to its ordered, deduplicated list of
// alternatives. Multiple source rules sharing an LHS are merged into one
// Rule by RuleSet.Add; per §3 the transformer may assume at most one
// Rule per LHS after any stage.
type Rule struct {
	LHS Symbol
	RHS []Production
}

// RuleSet is an ordered collection of Rules, one per LHS, indexed for
// fast lookup and dedup by production key.
type RuleSet struct {
	order []Symbol
	byLHS map[Symbol]*Rule
	seen  map[Symbol]map[string]bool
}

// NewRuleSet returns an empty RuleSet.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		byLHS: map[Symbol]*Rule{},
		seen:  map[Symbol]map[string]bool{},
	}
}

// Add appends prod as an alternative of its LHS, creating the Rule if
// this is the first alternative seen for that LHS. It reports whether
// prod was new (false if it was a duplicate of an existing alternative
// under the same LHS).
func (rs *RuleSet) Add(prod Production) bool {
	lhs := prod.lhs
	seenSet, ok := rs.seen[lhs]
	if !ok {
		seenSet = map[string]bool{}
		rs.seen[lhs] = seenSet
	}
	k := prod.key()
	if seenSet[k] {
		return false
	}
	seenSet[k] = true

	rule, ok := rs.byLHS[lhs]
	if !ok {
		rule = &Rule{LHS: lhs}
		rs.byLHS[lhs] = rule
		rs.order = append(rs.order, lhs)
	}
	rule.RHS = append(rule.RHS, prod)
	return true
}

// Get returns the Rule for lhs, if any.
func (rs *RuleSet) Get(lhs Symbol) (*Rule, bool) {
	r, ok := rs.byLHS[lhs]
	return r, ok
}

// Delete removes the rule for lhs entirely.
func (rs *RuleSet) Delete(lhs Symbol) {
	if _, ok := rs.byLHS[lhs]; !ok {
		return
	}
	delete(rs.byLHS, lhs)
	delete(rs.seen, lhs)
	for i, s := range rs.order {
		if s == lhs {
			rs.order = append(rs.order[:i], rs.order[i+1:]...)
			break
		}
	}
}

// Replace discards lhs's current alternatives (if any) and installs
// alts in their place, deduplicating by key and preserving the LHS's
// original position in iteration order when it already existed.
func (rs *RuleSet) Replace(lhs Symbol, alts []Production) {
	rule, ok := rs.byLHS[lhs]
	if !ok {
		for _, p := range alts {
			rs.Add(p)
		}
		return
	}
	rule.RHS = nil
	rs.seen[lhs] = map[string]bool{}
	for _, p := range alts {
		rs.Add(p)
	}
	if len(rule.RHS) == 0 {
		rs.Delete(lhs)
	}
}

// Rules returns all Rules in the order their LHS was first added.
func (rs *RuleSet) Rules() []*Rule {
	out := make([]*Rule, 0, len(rs.order))
	for _, lhs := range rs.order {
		out = append(out, rs.byLHS[lhs])
	}
	return out
}

// Len reports the number of distinct LHS nonterminals with rules.
func (rs *RuleSet) Len() int { return len(rs.order) }

// Clone performs a deep copy, used by stages that need to iterate the
// previous stage's rules while building a fresh RuleSet.
func (rs *RuleSet) Clone() *RuleSet {
	out := NewRuleSet()
	for _, lhs := range rs.order {
		rule := rs.byLHS[lhs]
		alts := make([]Production, len(rule.RHS))
		copy(alts, rule.RHS)
		for _, p := range alts {
			out.Add(p)
		}
	}
	return out
}

func sortedLHSByName(rs *RuleSet, tab *SymbolTable) []Symbol {
	out := append([]Symbol(nil), rs.order...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := tab.ToText(out[i])
		tj, _ := tab.ToText(out[j])
		return ti < tj
	})
	return out
}
