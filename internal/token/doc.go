// Package token defines the flat lexical token model produced by the
// lexer. The expander is blind to the meaning of identifiers, so there
// is no keyword table: every word lexes as Ident.
package token
