package token

import (
	"splice/internal/source"
)

// Token represents a single lexical token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsOpenDelim reports whether the token opens a nested group.
func (t Token) IsOpenDelim() bool {
	switch t.Kind {
	case LParen, LBrace, LBracket:
		return true
	default:
		return false
	}
}

// IsCloseDelim reports whether the token closes a nested group.
func (t Token) IsCloseDelim() bool {
	switch t.Kind {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}
