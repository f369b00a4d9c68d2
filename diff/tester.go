package diff

import (
	"math/rand"

	"github.com/nihei9/cfgequiv/cyk"
	"github.com/nihei9/cfgequiv/gen"
	"github.com/nihei9/cfgequiv/grammar"
	"github.com/nihei9/cfgequiv/internal/clog"
)

// FindCounterExample implements §4.6. It seeds a deterministic PRNG
// from seed and, for fixed (g1, g2, seed, settings), always returns a
// bit-identical Result (§5, §8 property 8).
//
// Phase A generates from g1 up to trials times; phase B is symmetric
// over g2. A shared seen-set spans both phases so the same witness
// string is never queried twice. The first string accepted by one
// grammar and rejected by the other is returned as the counterexample;
// if a generated string is rejected by its own source grammar, that is
// logged as a self-rejection warning (a generator/grammar
// inconsistency) and does not count as a counterexample.
func FindCounterExample(seed int64, g1, g2 *grammar.Grammar, idx1, idx2 *cyk.Index, trials int, settings gen.Settings) Result {
	rng := rand.New(rand.NewSource(seed))
	d1 := cyk.NewDecider(g1, idx1)
	d2 := cyk.NewDecider(g2, idx2)
	seen := map[string]bool{}

	if r, ok := phase(rng, g1, d1, d2, trials, settings, seen, true); ok {
		return r
	}
	if r, ok := phase(rng, g2, d2, d1, trials, settings, seen, false); ok {
		return r
	}
	return Result{Found: false}
}

func phase(rng *rand.Rand, genGrammar *grammar.Grammar, self, other *cyk.Decider, trials int, settings gen.Settings, seen map[string]bool, genIsG1 bool) (Result, bool) {
	for i := 0; i < trials; i++ {
		s, ok := gen.Generate(rng, genGrammar, settings)
		if !ok {
			continue
		}
		if seen[s] {
			continue
		}
		seen[s] = true

		tokens := ByteTokens(s)
		selfAccepts := self.Accepts(tokens)
		otherAccepts := other.Accepts(tokens)

		if !selfAccepts {
			clog.Log("diff: self-rejection warning for generated string %q", s)
			continue
		}
		if otherAccepts {
			continue
		}

		if genIsG1 {
			return Result{Found: true, Witness: s, G1Accepts: true, G2Accepts: false}, true
		}
		return Result{Found: true, Witness: s, G1Accepts: false, G2Accepts: true}, true
	}
	return Result{}, false
}
