package gen

import (
	"splice/internal/diag"
	"splice/internal/tokentree"
)

// PinData is one half of the structural-pinning pair: for a
// `struct Name { ... }` whose fields may carry an `@pin` marker it emits a
// `NameProjection` struct mirroring exactly the pinned fields.
type PinData struct{}

func (PinData) Name() string { return "pin_data" }

func (PinData) Expand(input tokentree.Stream, rep diag.Reporter) (tokentree.Stream, bool) {
	name, body, ok := declShape(input, "struct")
	if !ok {
		reportGenErr(rep, diag.GenBadShape, spanOf(input), "pin_data expects a `struct Name { ... }` declaration")
		return nil, false
	}
	fields, ok := structFields(body, rep)
	if !ok {
		return nil, false
	}

	var projected tokentree.Stream
	for _, f := range fields {
		if !f.hasAttr("pin") {
			continue
		}
		projected = append(projected,
			ident(f.Name.Text, f.Name.Span),
			punct(":", f.Name.Span),
			ident("pinned", f.Name.Span),
			punct(",", f.Name.Span),
		)
	}

	out := make(tokentree.Stream, 0, len(input)+3)
	out = append(out, input...)
	out = append(out,
		ident("struct", name.Span),
		ident(name.Text+"Projection", name.Span),
		braceGroup(projected, body.Span),
	)
	return out, true
}

// PinnedDrop is the other half of the pair: it wraps a drop block in guard
// markers so that pinned fields cannot be moved out during teardown.
type PinnedDrop struct{}

func (PinnedDrop) Name() string { return "pinned_drop" }

func (PinnedDrop) Expand(input tokentree.Stream, rep diag.Reporter) (tokentree.Stream, bool) {
	found := false
	for i, t := range input {
		if t.Kind == tokentree.Ident && t.Text == "fn" &&
			i+1 < len(input) && input[i+1].Kind == tokentree.Ident && input[i+1].Text == "drop" {
			found = true
			break
		}
	}
	if !found {
		reportGenErr(rep, diag.GenBadShape, spanOf(input), "pinned_drop expects an implementation containing `fn drop`")
		return nil, false
	}

	sp := spanOf(input)
	out := tokentree.Stream{
		ident("pinned_drop_guard", sp),
		braceGroup(input, sp),
	}
	return out, true
}
