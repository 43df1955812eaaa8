package tokentree

// Equal reports structural equality of two streams: same token kinds and
// text in the same order. Provenance spans are not compared.
func Equal(a, b Stream) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalToken(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalToken(a, b Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Group:
		return a.Delim == b.Delim && Equal(a.Children, b.Children)
	case Literal:
		return a.Lit == b.Lit && a.Text == b.Text
	default:
		return a.Text == b.Text
	}
}
