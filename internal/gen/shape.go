package gen

import (
	"fmt"

	"splice/internal/diag"
	"splice/internal/source"
	"splice/internal/tokentree"
)

// declShape locates `<keyword> Name { body }` in the input, skipping any
// leading attribute or visibility tokens.
func declShape(s tokentree.Stream, keyword string) (name tokentree.Token, body tokentree.Token, ok bool) {
	for i, t := range s {
		if t.Kind != tokentree.Ident || t.Text != keyword {
			continue
		}
		if i+1 < len(s) && s[i+1].Kind == tokentree.Ident {
			name = s[i+1]
			for j := i + 2; j < len(s); j++ {
				if s[j].Kind == tokentree.Group && s[j].Delim == tokentree.DelimBrace {
					return name, s[j], true
				}
			}
		}
		break
	}
	return tokentree.Token{}, tokentree.Token{}, false
}

// field is one `name : type` entry of a struct body, with optional
// attribute markers preceding the name.
type field struct {
	Name  tokentree.Token
	Attrs []string
}

// structFields splits a brace body on top-level commas into fields.
func structFields(body tokentree.Token, rep diag.Reporter) ([]field, bool) {
	var fields []field
	entries := splitComma(body.Children)
	for _, entry := range entries {
		if len(entry) == 0 {
			continue
		}
		var f field
		i := 0
		for i+1 < len(entry) && entry[i].IsPunct("@") && entry[i+1].Kind == tokentree.Ident {
			f.Attrs = append(f.Attrs, entry[i+1].Text)
			i += 2
		}
		if i >= len(entry) || entry[i].Kind != tokentree.Ident {
			reportGenErr(rep, diag.GenBadShape, body.Span, "expected field name")
			return nil, false
		}
		f.Name = entry[i]
		if i+1 >= len(entry) || !entry[i+1].IsPunct(":") {
			reportGenErr(rep, diag.GenBadShape, f.Name.Span,
				fmt.Sprintf("field %q has no type annotation", f.Name.Text))
			return nil, false
		}
		fields = append(fields, f)
	}
	return fields, true
}

func (f field) hasAttr(name string) bool {
	for _, a := range f.Attrs {
		if a == name {
			return true
		}
	}
	return false
}

// splitComma splits a stream on top-level commas. Nested groups are
// opaque, so commas inside them do not split.
func splitComma(s tokentree.Stream) []tokentree.Stream {
	var out []tokentree.Stream
	start := 0
	for i, t := range s {
		if t.IsPunct(",") {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// spanOf returns the covering span of a stream, or the zero span when empty.
func spanOf(s tokentree.Stream) source.Span {
	if len(s) == 0 {
		return source.Span{}
	}
	sp := s[0].Span
	for _, t := range s[1:] {
		sp = sp.Cover(t.Span)
	}
	return sp
}

func reportGenErr(rep diag.Reporter, code diag.Code, sp source.Span, msg string) {
	if rep != nil {
		rep.Report(code, diag.SevError, sp, msg, nil)
	}
}

// token construction helpers for emitted boilerplate; spans point at the
// source token that motivated each emitted token.
func ident(text string, sp source.Span) tokentree.Token {
	return tokentree.NewIdent(text, sp)
}

func punct(symbol string, sp source.Span) tokentree.Token {
	return tokentree.NewPunct(symbol, sp)
}

func intLit(text string, sp source.Span) tokentree.Token {
	return tokentree.NewLiteral(tokentree.LitInt, text, sp)
}

func braceGroup(children tokentree.Stream, sp source.Span) tokentree.Token {
	return tokentree.NewGroup(tokentree.DelimBrace, children, sp)
}

func parenGroup(children tokentree.Stream, sp source.Span) tokentree.Token {
	return tokentree.NewGroup(tokentree.DelimParen, children, sp)
}
