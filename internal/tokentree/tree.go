package tokentree

import (
	"splice/internal/source"
)

// Kind represents the category of a tree token.
type Kind uint8

const (
	// Ident is an identifier leaf.
	Ident Kind = iota
	// Literal is a numeric or string literal leaf.
	Literal
	// Punct is a punctuation/operator leaf (possibly multi-character).
	Punct
	// Group is a delimited sub-stream.
	Group
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case Literal:
		return "Literal"
	case Punct:
		return "Punct"
	case Group:
		return "Group"
	}
	return "Unknown"
}

// LitKind classifies literal leaves.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "Int"
	case LitFloat:
		return "Float"
	case LitString:
		return "String"
	}
	return "Unknown"
}

// Delim identifies the delimiter pair of a Group.
type Delim uint8

const (
	DelimParen Delim = iota
	DelimBracket
	DelimBrace
)

func (d Delim) Open() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBracket:
		return "["
	case DelimBrace:
		return "{"
	}
	return "?"
}

func (d Delim) Close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBracket:
		return "]"
	case DelimBrace:
		return "}"
	}
	return "?"
}

// Token is one node of the tree. Text holds the identifier text, the raw
// literal text (string literals keep their quotes), or the punctuation
// symbol. A Group owns its Children outright; no token is referenced from
// more than one place in the tree.
type Token struct {
	Kind     Kind
	Text     string
	Lit      LitKind
	Delim    Delim
	Children Stream
	Span     source.Span
}

// Stream is an ordered token sequence.
type Stream []Token

// NewIdent builds an identifier leaf.
func NewIdent(text string, sp source.Span) Token {
	return Token{Kind: Ident, Text: text, Span: sp}
}

// NewLiteral builds a literal leaf from its raw text.
func NewLiteral(kind LitKind, text string, sp source.Span) Token {
	return Token{Kind: Literal, Lit: kind, Text: text, Span: sp}
}

// NewPunct builds a punctuation leaf.
func NewPunct(symbol string, sp source.Span) Token {
	return Token{Kind: Punct, Text: symbol, Span: sp}
}

// NewGroup builds a delimited group owning the given children.
func NewGroup(delim Delim, children Stream, sp source.Span) Token {
	return Token{Kind: Group, Delim: delim, Children: children, Span: sp}
}

// IsPunct reports whether the token is the given punctuation symbol.
func (t Token) IsPunct(symbol string) bool {
	return t.Kind == Punct && t.Text == symbol
}
