package gen

import (
	"fmt"

	"splice/internal/diag"
	"splice/internal/tokentree"
)

// Module declares a loadable module: it parses `key: value, ...` metadata
// and emits a module_info block of constants. `name` and `license` are
// required; `description`, `authors`, `alias`, and `firmware` are optional.
type Module struct{}

func (Module) Name() string { return "module" }

var moduleKeys = map[string]bool{
	"name":        true,
	"license":     true,
	"description": true,
	"authors":     true,
	"alias":       true,
	"firmware":    true,
}

// moduleListKeys accept a bracket list of string values.
var moduleListKeys = map[string]bool{
	"authors":  true,
	"alias":    true,
	"firmware": true,
}

func (Module) Expand(input tokentree.Stream, rep diag.Reporter) (tokentree.Stream, bool) {
	body := input
	// metadata may come wrapped in a single brace group
	if len(input) == 1 && input[0].Kind == tokentree.Group && input[0].Delim == tokentree.DelimBrace {
		body = input[0].Children
	}

	seen := make(map[string]bool)
	var emitted tokentree.Stream

	for _, entry := range splitComma(body) {
		if len(entry) == 0 {
			continue
		}
		key := entry[0]
		if key.Kind != tokentree.Ident {
			reportGenErr(rep, diag.GenBadShape, key.Span, "expected metadata key")
			return nil, false
		}
		if !moduleKeys[key.Text] {
			reportGenErr(rep, diag.GenBadShape, key.Span, fmt.Sprintf("unknown metadata key %q", key.Text))
			return nil, false
		}
		if seen[key.Text] {
			reportGenErr(rep, diag.GenDuplicateField, key.Span, fmt.Sprintf("duplicate metadata key %q", key.Text))
			return nil, false
		}
		seen[key.Text] = true

		if len(entry) < 3 || !entry[1].IsPunct(":") {
			reportGenErr(rep, diag.GenBadShape, key.Span, fmt.Sprintf("expected %q: value", key.Text))
			return nil, false
		}
		value := entry[2]

		values, ok := moduleValues(key.Text, value, rep)
		if !ok {
			return nil, false
		}
		for _, v := range values {
			emitted = append(emitted,
				ident(key.Text, key.Span),
				punct("=", key.Span),
				v,
				punct(";", v.Span),
			)
		}
	}

	for _, required := range []string{"name", "license"} {
		if !seen[required] {
			sp := spanOf(input)
			reportGenErr(rep, diag.GenMissingField, sp, fmt.Sprintf("module declaration requires %q", required))
			return nil, false
		}
	}

	out := tokentree.Stream{
		ident("module_info", spanOf(input)),
		braceGroup(emitted, spanOf(input)),
	}
	return out, true
}

// moduleValues validates one metadata value and flattens list keys.
func moduleValues(key string, value tokentree.Token, rep diag.Reporter) (tokentree.Stream, bool) {
	isString := func(t tokentree.Token) bool {
		return t.Kind == tokentree.Literal && t.Lit == tokentree.LitString
	}

	if moduleListKeys[key] {
		if value.Kind == tokentree.Group && value.Delim == tokentree.DelimBracket {
			var out tokentree.Stream
			for _, entry := range splitComma(value.Children) {
				if len(entry) != 1 || !isString(entry[0]) {
					reportGenErr(rep, diag.GenBadShape, value.Span,
						fmt.Sprintf("%q entries must be string literals", key))
					return nil, false
				}
				out = append(out, entry[0])
			}
			return out, true
		}
		// a single string is accepted as a one-element list
	}

	if !isString(value) {
		reportGenErr(rep, diag.GenBadShape, value.Span, fmt.Sprintf("%q must be a string literal", key))
		return nil, false
	}
	return tokentree.Stream{value}, true
}
