package token

// Kind represents the category of a lexical token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token (any word, keywords included).
	Ident

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket

	// Lt represents '<'.
	Lt
	// Gt represents '>'.
	Gt
	// LtEq represents '<='.
	LtEq
	// GtEq represents '>='.
	GtEq
	// Shl represents '<<'.
	Shl
	// Shr represents '>>'.
	Shr

	// Colon represents ':'.
	Colon
	// ColonColon represents '::'.
	ColonColon
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// DotDot represents '..'.
	DotDot
	// Arrow represents '->'.
	Arrow
	// FatArrow represents '=>'.
	FatArrow

	// Assign represents '='.
	Assign
	// EqEq represents '=='.
	EqEq
	// Bang represents '!'.
	Bang
	// BangEq represents '!='.
	BangEq
	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Percent represents '%'.
	Percent
	// Amp represents '&'.
	Amp
	// AndAnd represents '&&'.
	AndAnd
	// Pipe represents '|'.
	Pipe
	// OrOr represents '||'.
	OrOr
	// Caret represents '^'.
	Caret
	// Question represents '?'.
	Question
	// At represents '@'.
	At
	// Pound represents '#'.
	Pound
	// Dollar represents '$'.
	Dollar
	// Underscore represents a lone '_'.
	Underscore
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	Lt:         "Lt",
	Gt:         "Gt",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	Shl:        "Shl",
	Shr:        "Shr",
	Colon:      "Colon",
	ColonColon: "ColonColon",
	Semicolon:  "Semicolon",
	Comma:      "Comma",
	Dot:        "Dot",
	DotDot:     "DotDot",
	Arrow:      "Arrow",
	FatArrow:   "FatArrow",
	Assign:     "Assign",
	EqEq:       "EqEq",
	Bang:       "Bang",
	BangEq:     "BangEq",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	Amp:        "Amp",
	AndAnd:     "AndAnd",
	Pipe:       "Pipe",
	OrOr:       "OrOr",
	Caret:      "Caret",
	Question:   "Question",
	At:         "At",
	Pound:      "Pound",
	Dollar:     "Dollar",
	Underscore: "Underscore",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
