package tokentree

import (
	"strings"
)

// Render rebuilds source text from a stream. Spacing is canonical rather
// than original: tokens are space-separated, with no padding inside
// delimiters and none before ',', ';', or ':'.
func Render(s Stream) string {
	var b strings.Builder
	renderStream(&b, s)
	return b.String()
}

func renderStream(b *strings.Builder, s Stream) {
	for i, t := range s {
		if i > 0 && needsSpace(s[i-1], t) {
			b.WriteByte(' ')
		}
		renderToken(b, t)
	}
}

func renderToken(b *strings.Builder, t Token) {
	if t.Kind != Group {
		b.WriteString(t.Text)
		return
	}
	b.WriteString(t.Delim.Open())
	renderStream(b, t.Children)
	b.WriteString(t.Delim.Close())
}

func needsSpace(prev, next Token) bool {
	if next.IsPunct(",") || next.IsPunct(";") || next.IsPunct(":") || next.IsPunct("::") {
		return false
	}
	if prev.IsPunct(":") || prev.IsPunct("::") || prev.IsPunct("@") || prev.IsPunct("#") || prev.IsPunct("$") {
		return false
	}
	return true
}
