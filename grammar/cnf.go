package grammar

import "github.com/nihei9/cfgequiv/internal/clog"

// ToCNF runs the six-stage pipeline of §4.1 in the one order that is
// safe (§4.1's note: running UNIT before DEL can introduce unit
// productions via epsilon elision that UNIT never sees): START, DEL,
// UNIT, USELESS, TERM, BIN. It returns a new grammar in Chomsky Normal
// Form equivalent to g modulo the empty-string policy of §3.
func ToCNF(g *Grammar) (*Grammar, error) {
	clog.Log("--- CNF transform starts")

	cur := g
	var err error

	cur, err = stageStart(cur)
	if err != nil {
		return nil, err
	}
	clog.Log("--- after START")
	PrintRules(clog.GetWriter(), cur)

	cur, err = stageDel(cur)
	if err != nil {
		return nil, err
	}
	clog.Log("--- after DEL")
	PrintRules(clog.GetWriter(), cur)

	cur, err = stageUnit(cur)
	if err != nil {
		return nil, err
	}
	clog.Log("--- after UNIT")
	PrintRules(clog.GetWriter(), cur)

	cur, err = stageUseless(cur)
	if err != nil {
		return nil, err
	}
	clog.Log("--- after USELESS")
	PrintRules(clog.GetWriter(), cur)

	cur, err = stageTerm(cur)
	if err != nil {
		return nil, err
	}
	clog.Log("--- after TERM")
	PrintRules(clog.GetWriter(), cur)

	cur, err = stageBin(cur)
	if err != nil {
		return nil, err
	}
	clog.Log("--- after BIN")
	PrintRules(clog.GetWriter(), cur)

	clog.Log("--- CNF transform ends")
	return cur, nil
}
