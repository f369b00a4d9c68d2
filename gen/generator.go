package gen

import (
	"math/rand"
	"strings"

	"github.com/nihei9/cfgequiv/grammar"
	"github.com/nihei9/cfgequiv/internal/clog"
)

// Generate performs one biased leftmost/random derivation attempt
// starting from g's start symbol, per §4.5. It returns the derived
// terminal string and true on success, or ("", false) on any of the
// three failure conditions: exceeding MaxSteps, a nonterminal with no
// alternatives, or exceeding MaxLen. Failures are silent to the caller
// by design (§7) — the caller retries with a fresh attempt.
func Generate(rng *rand.Rand, g *grammar.Grammar, settings Settings) (string, bool) {
	form := []grammar.Symbol{g.Start}
	steps := 0

	for {
		ntPositions := nonterminalPositions(form)
		if len(ntPositions) == 0 {
			s := joinTerminals(g, form)
			if len(s) > settings.MaxLen {
				clog.Log("gen: derivation finished over length budget (%d > %d)", len(s), settings.MaxLen)
				return "", false
			}
			return s, true
		}

		curLen := terminalByteLen(g, form)
		if curLen > settings.MaxLen {
			clog.Log("gen: mid-derivation length %d exceeds budget %d", curLen, settings.MaxLen)
			return "", false
		}
		if steps >= settings.MaxSteps {
			clog.Log("gen: exceeded step budget %d", settings.MaxSteps)
			return "", false
		}

		var pos int
		if rng.Float64() < settings.PLeftmost {
			pos = ntPositions[0]
		} else {
			pos = ntPositions[rng.Intn(len(ntPositions))]
		}

		rule, ok := g.Rules.Get(form[pos])
		if !ok || len(rule.RHS) == 0 {
			clog.Log("gen: nonterminal %v has no alternatives", form[pos])
			return "", false
		}

		alt := chooseAlternative(rng, rule.RHS, g, steps, curLen, settings)
		steps++

		var repl []grammar.Symbol
		if !alt.IsEpsilon(g.Epsilon()) {
			repl = alt.RHS()
		}

		next := make([]grammar.Symbol, 0, len(form)-1+len(repl))
		next = append(next, form[:pos]...)
		next = append(next, repl...)
		next = append(next, form[pos+1:]...)
		form = next
	}
}

func nonterminalPositions(form []grammar.Symbol) []int {
	var out []int
	for i, sym := range form {
		if sym.IsNonTerminal() {
			out = append(out, i)
		}
	}
	return out
}

func terminalByteLen(g *grammar.Grammar, form []grammar.Symbol) int {
	n := 0
	eps := g.Epsilon()
	for _, sym := range form {
		if sym.IsNonTerminal() || sym == eps {
			continue
		}
		if text, ok := g.Symbols.ToText(sym); ok {
			n += len(text)
		}
	}
	return n
}

func joinTerminals(g *grammar.Grammar, form []grammar.Symbol) string {
	var b strings.Builder
	eps := g.Epsilon()
	for _, sym := range form {
		if sym == eps {
			continue
		}
		if text, ok := g.Symbols.ToText(sym); ok {
			b.WriteString(text)
		}
	}
	return b.String()
}

// chooseAlternative draws one alternative from alts proportional to the
// weights of §4.5. If every weight collapses to zero (all alternatives
// masked out), it falls back to a uniform draw.
func chooseAlternative(rng *rand.Rand, alts []grammar.Production, g *grammar.Grammar, steps, curLen int, settings Settings) grammar.Production {
	weights := make([]float64, len(alts))
	total := 0.0

	nearBudget := float64(steps) >= 0.75*float64(settings.MaxSteps) || curLen >= settings.TargetMax

	for i, alt := range alts {
		w := 1.0
		isEps := alt.IsEpsilon(g.Epsilon())
		nt, t := countSymbols(alt, g.Epsilon())

		if isEps {
			if curLen < settings.TargetMin {
				w *= 0.1
			} else {
				w *= 0.6
			}
		}
		if nearBudget {
			w *= 1.0 / (1.0 + float64(nt))
		}
		if curLen < settings.TargetMin {
			w *= 1.0 + float64(t)
		}
		if curLen > settings.TargetMax {
			w *= 1.0 / (1.0 + float64(t))
		}

		weights[i] = w
		total += w
	}

	if total <= 0 {
		return alts[rng.Intn(len(alts))]
	}

	draw := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if draw < acc {
			return alts[i]
		}
	}
	return alts[len(alts)-1]
}

// countSymbols returns the number of nonterminal and non-epsilon
// terminal symbols in alt's RHS. The epsilon alternative itself counts
// as contributing neither, since it produces no symbols.
func countSymbols(alt grammar.Production, eps grammar.Symbol) (nonterminals, terminals int) {
	for _, sym := range alt.RHS() {
		switch {
		case sym == eps:
		case sym.IsNonTerminal():
			nonterminals++
		default:
			terminals++
		}
	}
	return
}
