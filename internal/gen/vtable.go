package gen

import (
	"strings"

	"splice/internal/diag"
	"splice/internal/tokentree"
)

// VTable closes the gap between trait-style declarations and C-style
// vtables with NULL entries for optional methods: it scans a trait body
// for `fn name(...)` declarations and emits one `const HAS_<NAME>` flag
// per method, true when the method carries a default body.
type VTable struct{}

func (VTable) Name() string { return "vtable" }

func (VTable) Expand(input tokentree.Stream, rep diag.Reporter) (tokentree.Stream, bool) {
	name, body, ok := declShape(input, "trait")
	if !ok {
		reportGenErr(rep, diag.GenBadShape, spanOf(input), "vtable expects a `trait Name { ... }` declaration")
		return nil, false
	}

	var flags tokentree.Stream
	children := body.Children
	for i := 0; i+1 < len(children); i++ {
		if !(children[i].Kind == tokentree.Ident && children[i].Text == "fn") {
			continue
		}
		method := children[i+1]
		if method.Kind != tokentree.Ident {
			continue
		}
		// a default body is a brace group before the next `fn`
		hasBody := false
		for j := i + 2; j < len(children); j++ {
			if children[j].Kind == tokentree.Ident && children[j].Text == "fn" {
				break
			}
			if children[j].Kind == tokentree.Group && children[j].Delim == tokentree.DelimBrace {
				hasBody = true
				break
			}
			if children[j].IsPunct(";") {
				break
			}
		}

		value := "false"
		if hasBody {
			value = "true"
		}
		flags = append(flags,
			ident("const", method.Span),
			ident("HAS_"+strings.ToUpper(method.Text), method.Span),
			punct("=", method.Span),
			ident(value, method.Span),
			punct(";", method.Span),
		)
	}

	out := make(tokentree.Stream, 0, len(input)+2)
	out = append(out, input...)
	out = append(out,
		ident("vtable_impl", name.Span),
		braceGroup(flags, body.Span),
	)
	return out, true
}
