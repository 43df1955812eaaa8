package paste

import (
	"splice/internal/tokentree"
)

// Replacement substitutes the half-open token range [Lo, Hi) of one
// nesting level with a single resolved token.
type Replacement struct {
	Lo, Hi int
	Tok    tokentree.Token
}

// Reassemble builds a new stream where each replacement range is replaced
// by exactly one token and all other tokens keep their original identity
// and order. Replacements must be sorted by Lo and non-overlapping. The
// output length is the input length minus the tokens consumed by the
// ranges plus one token per replacement.
func Reassemble(orig tokentree.Stream, reps []Replacement) tokentree.Stream {
	if len(reps) == 0 {
		return orig
	}
	out := make(tokentree.Stream, 0, len(orig)-consumed(reps)+len(reps))
	idx := 0
	for _, r := range reps {
		out = append(out, orig[idx:r.Lo]...)
		out = append(out, r.Tok)
		idx = r.Hi
	}
	out = append(out, orig[idx:]...)
	return out
}

func consumed(reps []Replacement) int {
	n := 0
	for _, r := range reps {
		n += r.Hi - r.Lo
	}
	return n
}
