package tokentree

import (
	"fmt"

	"splice/internal/diag"
	"splice/internal/source"
	"splice/internal/token"
)

// Build nests a flat lexical token stream into a tree by matching
// delimiter pairs. Invalid tokens are skipped (the lexer has already
// reported them). Returns false if any delimiter fails to match; the
// partially built stream is not returned in that case.
func Build(tokens []token.Token, rep diag.Reporter) (Stream, bool) {
	type frame struct {
		delim    Delim
		openSpan source.Span
		items    Stream
	}

	var stack []frame
	current := make(Stream, 0, len(tokens))
	ok := true

	reportErr := func(code diag.Code, sp source.Span, msg string) {
		ok = false
		if rep != nil {
			rep.Report(code, diag.SevError, sp, msg, nil)
		}
	}

	push := func(t Token) {
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			top.items = append(top.items, t)
			return
		}
		current = append(current, t)
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case token.EOF:
			// handled after the loop
		case token.Invalid:
			ok = false
		case token.LParen, token.LBracket, token.LBrace:
			stack = append(stack, frame{
				delim:    openDelim(tok.Kind),
				openSpan: tok.Span,
			})
		case token.RParen, token.RBracket, token.RBrace:
			want := closeDelim(tok.Kind)
			if len(stack) == 0 {
				reportErr(diag.NestUnexpectedCloser, tok.Span,
					fmt.Sprintf("unexpected %q", want.Close()))
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.delim != want {
				reportErr(diag.NestMismatchedCloser, tok.Span,
					fmt.Sprintf("expected %q to close group opened here, found %q",
						top.delim.Close(), want.Close()))
				continue
			}
			push(NewGroup(top.delim, top.items, top.openSpan.Cover(tok.Span)))
		default:
			push(leafToken(tok))
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		reportErr(diag.NestUnclosedDelim, stack[i].openSpan,
			fmt.Sprintf("unclosed %q", stack[i].delim.Open()))
	}

	if !ok {
		return nil, false
	}
	return current, true
}

func openDelim(k token.Kind) Delim {
	switch k {
	case token.LParen:
		return DelimParen
	case token.LBrace:
		return DelimBrace
	default:
		return DelimBracket
	}
}

func closeDelim(k token.Kind) Delim {
	switch k {
	case token.RParen:
		return DelimParen
	case token.RBrace:
		return DelimBrace
	default:
		return DelimBracket
	}
}

func leafToken(tok token.Token) Token {
	switch tok.Kind {
	case token.Ident, token.Underscore:
		return NewIdent(tok.Text, tok.Span)
	case token.IntLit:
		return NewLiteral(LitInt, tok.Text, tok.Span)
	case token.FloatLit:
		return NewLiteral(LitFloat, tok.Text, tok.Span)
	case token.StringLit:
		return NewLiteral(LitString, tok.Text, tok.Span)
	default:
		return NewPunct(tok.Text, tok.Span)
	}
}
