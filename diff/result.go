// Package diff implements the differential tester of §4.6: generate
// candidate strings from each grammar's language and look for one
// accepted by exactly one of the two CYK deciders.
package diff

// Result is the outcome of one FindCounterExample run.
type Result struct {
	Found     bool
	Witness   string
	G1Accepts bool
	G2Accepts bool
}

// ByteTokens splits s into one-byte tokens, the default token-alignment
// convention of §4.4: both generation output and CYK membership
// queries operate on byte-indexed sequences.
func ByteTokens(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = string(s[i])
	}
	return out
}
