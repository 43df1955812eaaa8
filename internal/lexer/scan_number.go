package lexer

import (
	"splice/internal/diag"
	"splice/internal/token"
)

// Supported forms: 0, 123, 0b..., 0o..., 0x..., 1.0, 1e-3, 1.0e+10.
// Suffixes stay in Token.Text; Kind is IntLit/FloatLit by shape.
// Bad forms are reported and the token finished where possible.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	kind := token.IntLit

	// leading dot: ".digits" form
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		goto emitWithMaybeExp
	}

	// leading 0 with a base prefix?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			for {
				b := lx.cursor.Peek()
				if b == '0' || b == '1' || b == '_' {
					lx.cursor.Bump()
				} else {
					break
				}
			}
			goto emit
		case 'o', 'O':
			lx.cursor.Bump()
			for {
				b := lx.cursor.Peek()
				if (b >= '0' && b <= '7') || b == '_' {
					lx.cursor.Bump()
				} else {
					break
				}
			}
			goto emit
		case 'x', 'X':
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			goto emit
		default:
			// plain "0" (a decimal fraction may follow)
		}
	}

	// decimal integer part
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// fraction
	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '.' && b1 == '.' {
			// '..' is a range operator, not part of the number
		} else {
			lx.cursor.Bump()
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

emitWithMaybeExp:
	// exponent
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

emit:
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
