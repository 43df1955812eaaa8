package lexer

import (
	"splice/internal/diag"
	"splice/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
// Runs of spaces/tabs coalesce into one TriviaSpace, consecutive newlines
// into one TriviaNewline; //... and /*...*/ (nested) become comments.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// //... or /*...*/
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	b := lx.cursor.Peek()
	switch b {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaLineComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true

	case '*': // block comment with nesting
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true
	default:
		// not a comment: rewind so '/' scans as an operator
		lx.cursor.Reset(start)
		return false
	}
}
