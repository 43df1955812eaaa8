package lexer

import (
	"splice/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdent scans an identifier. There is no keyword table: the expander
// treats every word, keywords of the host language included, as Ident.
// Token.Text is exactly the source slice.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
	}
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]
	text := string(lex)

	if len(lex) == 1 && lex[0] == '_' {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
