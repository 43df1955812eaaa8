package gen

import (
	"splice/internal/diag"
	"splice/internal/tokentree"
)

// Export marks a function as callable from foreign code: it prepends
// `@no_mangle @export` markers and passes the declaration through
// unchanged. Symbol name verification belongs to the surrounding build,
// not to this rewrite.
type Export struct{}

func (Export) Name() string { return "export" }

func (Export) Expand(input tokentree.Stream, rep diag.Reporter) (tokentree.Stream, bool) {
	fnAt := -1
	for i, t := range input {
		if t.Kind == tokentree.Ident && t.Text == "fn" {
			fnAt = i
			break
		}
	}
	if fnAt < 0 || fnAt+1 >= len(input) || input[fnAt+1].Kind != tokentree.Ident {
		reportGenErr(rep, diag.GenBadShape, spanOf(input), "export expects a `fn name(...)` declaration")
		return nil, false
	}
	name := input[fnAt+1]

	out := make(tokentree.Stream, 0, len(input)+4)
	out = append(out,
		punct("@", name.Span),
		ident("no_mangle", name.Span),
		punct("@", name.Span),
		ident("export", name.Span),
	)
	out = append(out, input...)
	return out, true
}
