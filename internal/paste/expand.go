package paste

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"splice/internal/diag"
	"splice/internal/source"
	"splice/internal/tokentree"
)

// Expand rewrites the stream, resolving every splice unit at every nesting
// level. Returns false (and no stream) if any unit is malformed; the
// diagnostics describing the failure go to rep. A stream without splice
// markers is returned structurally unchanged.
func Expand(stream tokentree.Stream, rep diag.Reporter) (tokentree.Stream, bool) {
	e := &expander{
		root:  stream,
		rep:   rep,
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
	}
	return e.walk(stream)
}

// expander carries the per-invocation state: the root stream (for span
// reference lookup) and the case folders, which are stateful and must not
// be shared between invocations.
type expander struct {
	root  tokentree.Stream
	rep   diag.Reporter
	lower cases.Caser
	upper cases.Caser
}

func (e *expander) errSplice(code diag.Code, sp source.Span, msg string) {
	if e.rep != nil {
		e.rep.Report(code, diag.SevError, sp, msg, nil)
	}
}

// walk resolves one nesting level: splice units become single identifiers,
// ordinary groups are recursed into first and rebuilt with their resolved
// children, and everything else is left for the reassembler to copy.
func (e *expander) walk(s tokentree.Stream) (tokentree.Stream, bool) {
	var reps []Replacement
	for i, t := range s {
		if t.Kind != tokentree.Group {
			continue
		}
		if isSpliceOpen(t) {
			if !isSpliceClosed(t) {
				e.errSplice(diag.SpliceMalformed, t.Span, "splice marker '[<' has no matching '>]'")
				return nil, false
			}
			id, ok := e.concat(t)
			if !ok {
				return nil, false
			}
			reps = append(reps, Replacement{Lo: i, Hi: i + 1, Tok: id})
			continue
		}
		children, ok := e.walk(t.Children)
		if !ok {
			return nil, false
		}
		reps = append(reps, Replacement{
			Lo: i, Hi: i + 1,
			Tok: tokentree.NewGroup(t.Delim, children, t.Span),
		})
	}
	return Reassemble(s, reps), true
}

// isSpliceOpen reports whether the group starts with the "[<" marker.
func isSpliceOpen(t tokentree.Token) bool {
	return t.Kind == tokentree.Group &&
		t.Delim == tokentree.DelimBracket &&
		len(t.Children) > 0 &&
		t.Children[0].IsPunct("<")
}

// isSpliceClosed reports whether the "[<" group also ends with ">]".
func isSpliceClosed(t tokentree.Token) bool {
	return len(t.Children) >= 2 && t.Children[len(t.Children)-1].IsPunct(">")
}

// resolveSpanRef finds the provenance of the first identifier named ref
// anywhere in the invocation's stream, in document order.
func (e *expander) resolveSpanRef(ref string) (source.Span, bool) {
	return findIdent(e.root, ref)
}

func findIdent(s tokentree.Stream, name string) (source.Span, bool) {
	for _, t := range s {
		switch t.Kind {
		case tokentree.Ident:
			if t.Text == name {
				return t.Span, true
			}
		case tokentree.Group:
			if sp, ok := findIdent(t.Children, name); ok {
				return sp, true
			}
		}
	}
	return source.Span{}, false
}
