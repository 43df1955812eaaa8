package gen

import (
	"strings"

	"splice/internal/diag"
	"splice/internal/tokentree"
)

// Zeroable derives zero-initialization boilerplate for a struct: it emits
// `fn <name>_zeroed() -> Name { Name { field: 0, ... } }` covering every
// field of the declaration.
type Zeroable struct{}

func (Zeroable) Name() string { return "zeroable" }

func (Zeroable) Expand(input tokentree.Stream, rep diag.Reporter) (tokentree.Stream, bool) {
	name, body, ok := declShape(input, "struct")
	if !ok {
		reportGenErr(rep, diag.GenBadShape, spanOf(input), "zeroable expects a `struct Name { ... }` declaration")
		return nil, false
	}
	fields, ok := structFields(body, rep)
	if !ok {
		return nil, false
	}

	var init tokentree.Stream
	for _, f := range fields {
		init = append(init,
			ident(f.Name.Text, f.Name.Span),
			punct(":", f.Name.Span),
			intLit("0", f.Name.Span),
			punct(",", f.Name.Span),
		)
	}

	out := tokentree.Stream{
		ident("fn", name.Span),
		ident(strings.ToLower(name.Text)+"_zeroed", name.Span),
		parenGroup(nil, name.Span),
		punct("->", name.Span),
		ident(name.Text, name.Span),
		braceGroup(tokentree.Stream{
			ident(name.Text, name.Span),
			braceGroup(init, body.Span),
		}, body.Span),
	}
	return out, true
}
