package token

import "splice/internal/source"

// TriviaKind classifies non-significant input attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is a run of whitespace or a comment preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
