package paste

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"splice/internal/diag"
	"splice/internal/source"
	"splice/internal/tokentree"
)

// concat folds the fragments of one splice unit into a single identifier
// token. The unit's provenance becomes the result's provenance unless a
// span modifier overrides it.
func (e *expander) concat(unit tokentree.Token) (tokentree.Token, bool) {
	frags := unit.Children[1 : len(unit.Children)-1]
	if len(frags) == 0 {
		e.errSplice(diag.SpliceEmptyUnit, unit.Span, "splice unit has no fragments")
		return tokentree.Token{}, false
	}

	var text strings.Builder
	resultSpan := unit.Span
	spanSet := false

	i := 0
	for i < len(frags) {
		tok := frags[i]

		var fragText string
		switch tok.Kind {
		case tokentree.Ident:
			fragText = tok.Text
		case tokentree.Literal:
			rendered, ok := e.renderLiteral(tok)
			if !ok {
				return tokentree.Token{}, false
			}
			fragText = rendered
		case tokentree.Group:
			if isSpliceOpen(tok) {
				e.errSplice(diag.SpliceMalformed, tok.Span, "splice units do not nest")
			} else {
				e.errSplice(diag.SpliceUnsupportedFragment, tok.Span,
					"nested group inside a splice unit; only identifiers and literals are concatenable")
			}
			return tokentree.Token{}, false
		default:
			if tok.IsPunct(":") {
				e.errSplice(diag.SpliceMalformed, tok.Span, "modifier without a preceding fragment")
			} else {
				e.errSplice(diag.SpliceUnsupportedFragment, tok.Span,
					fmt.Sprintf("punctuation %q inside a splice unit; only identifiers and literals are concatenable", tok.Text))
			}
			return tokentree.Token{}, false
		}
		fragSpan := tok.Span
		i++

		// trailing :modifier suffixes, applied left to right
		for i < len(frags) && frags[i].IsPunct(":") {
			colon := frags[i]
			i++
			if i >= len(frags) || frags[i].Kind != tokentree.Ident {
				e.errSplice(diag.SpliceMalformed, colon.Span, "expected modifier name after ':'")
				return tokentree.Token{}, false
			}
			mod := frags[i]
			i++

			switch mod.Text {
			case "lower":
				fragText = e.lower.String(fragText)
			case "upper":
				fragText = e.upper.String(fragText)
			case "span":
				if spanSet {
					e.errSplice(diag.SpliceMalformed, mod.Span, "span modifier may appear at most once per splice unit")
					return tokentree.Token{}, false
				}
				sp, ok := e.spanModifier(frags, &i, fragSpan)
				if !ok {
					return tokentree.Token{}, false
				}
				resultSpan = sp
				spanSet = true
			default:
				e.errSplice(diag.SpliceUnknownModifier, mod.Span,
					fmt.Sprintf("unknown modifier %q; recognized modifiers are lower, upper, span", mod.Text))
				return tokentree.Token{}, false
			}
		}

		text.WriteString(fragText)
	}

	ident := norm.NFC.String(text.String())
	if !isValidIdent(ident) {
		e.errSplice(diag.SpliceUnsupportedFragment, unit.Span,
			fmt.Sprintf("concatenation %q does not form a valid identifier", ident))
		return tokentree.Token{}, false
	}

	return tokentree.NewIdent(ident, resultSpan), true
}

// spanModifier handles the two forms of the span modifier: bare `span`
// re-tags the result with the fragment's own provenance, `span(ref)` with
// the provenance of the identifier named ref elsewhere in the invocation.
func (e *expander) spanModifier(frags tokentree.Stream, i *int, fragSpan source.Span) (source.Span, bool) {
	if *i < len(frags) && frags[*i].Kind == tokentree.Group && frags[*i].Delim == tokentree.DelimParen {
		args := frags[*i]
		*i++
		if len(args.Children) != 1 || args.Children[0].Kind != tokentree.Ident {
			e.errSplice(diag.SpliceMalformed, args.Span, "span modifier takes a single identifier reference")
			return source.Span{}, false
		}
		ref := args.Children[0]
		sp, ok := e.resolveSpanRef(ref.Text)
		if !ok {
			e.errSplice(diag.SpliceUnresolvedSpanRef, ref.Span,
				fmt.Sprintf("span reference %q does not name a token in this invocation", ref.Text))
			return source.Span{}, false
		}
		return sp, true
	}
	return fragSpan, true
}

// renderLiteral converts a literal fragment to identifier-safe text.
// Integer literals contribute their digit text, string literals their
// unquoted content; float literals have no identifier-safe rendering.
func (e *expander) renderLiteral(tok tokentree.Token) (string, bool) {
	switch tok.Lit {
	case tokentree.LitInt:
		return tok.Text, true
	case tokentree.LitFloat:
		e.errSplice(diag.SpliceUnsupportedFragment, tok.Span,
			"floating-point literal cannot be rendered as identifier text")
		return "", false
	case tokentree.LitString:
		inner, err := strconv.Unquote(tok.Text)
		if err != nil {
			inner = strings.Trim(tok.Text, `"`)
		}
		for _, r := range inner {
			if !isIdentPart(r) {
				e.errSplice(diag.SpliceUnsupportedFragment, tok.Span,
					fmt.Sprintf("string literal %s is not identifier-safe", tok.Text))
				return "", false
			}
		}
		return inner, true
	}
	e.errSplice(diag.SpliceUnsupportedFragment, tok.Span, "literal kind cannot be rendered as identifier text")
	return "", false
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}
