package grammar

import (
	"fmt"
	"io"
)

// PrintRules writes a human-readable dump of g's rules to w, ordered by
// LHS name, in the "LHS -> alt1 alt2 | alt3" style the teacher tool
// prints its production sets in. It is used only for trace logging.
func PrintRules(w io.Writer, g *Grammar) {
	if w == nil {
		return
	}
	for _, lhs := range sortedLHSByName(g.Rules, g.Symbols) {
		rule, ok := g.Rules.Get(lhs)
		if !ok {
			continue
		}
		lhsText, _ := g.Symbols.ToText(rule.LHS)
		fmt.Fprintf(w, "%s ->", lhsText)
		for i, prod := range rule.RHS {
			if i > 0 {
				fmt.Fprint(w, " |")
			}
			for _, sym := range prod.RHS() {
				text, ok := g.Symbols.ToText(sym)
				if !ok {
					text = "<?>"
				}
				fmt.Fprintf(w, " %s", text)
			}
		}
		fmt.Fprintln(w)
	}
}
