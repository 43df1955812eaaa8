package lexer_test

import (
	"testing"

	"splice/internal/diag"
	"splice/internal/lexer"
	"splice/internal/source"
	"splice/internal/token"
)

// testReporter collects all diagnostics reported by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) hasCode(code diag.Code) bool {
	for _, d := range r.diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

// makeTestLexer creates a lexer over an in-memory file.
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mx", []byte(input))

	reporter := &testReporter{}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	return lx, reporter
}

func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, t := range tokens {
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := lx.All()
	if len(reporter.diagnostics) > 0 {
		t.Fatalf("lex %q reported %v", input, reporter.diagnostics)
	}
	want = append(want, token.EOF)
	got := kindsOf(tokens)
	if len(got) != len(want) {
		t.Fatalf("lex %q = %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lex %q = %v, want %v", input, got, want)
		}
	}
	return tokens
}

func TestLexIdentifiers(t *testing.T) {
	tokens := expectKinds(t, "foo _bar _ fn struct straße",
		token.Ident, token.Ident, token.Underscore, token.Ident, token.Ident, token.Ident)

	// keyword-blind: host keywords stay plain identifiers
	if tokens[3].Text != "fn" || tokens[4].Text != "struct" {
		t.Errorf("keywords should lex as Ident with their text")
	}
	if tokens[5].Text != "straße" {
		t.Errorf("unicode identifier = %q, want straße", tokens[5].Text)
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"42", token.IntLit},
		{"0xFF", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o755", token.IntLit},
		{"1.5", token.FloatLit},
		{"1e10", token.FloatLit},
		{"2.5e-3", token.FloatLit},
	}
	for _, tt := range tests {
		tokens := expectKinds(t, tt.input, tt.kind)
		if tokens[0].Text != tt.input {
			t.Errorf("lex %q text = %q", tt.input, tokens[0].Text)
		}
	}

	// a range-like "1..2" must not lex "1." as a float
	expectKinds(t, "1 .. 2", token.IntLit, token.DotDot, token.IntLit)
}

func TestLexStrings(t *testing.T) {
	tokens := expectKinds(t, `"hello" "a\"b"`, token.StringLit, token.StringLit)
	if tokens[0].Text != `"hello"` {
		t.Errorf("string text = %q", tokens[0].Text)
	}

	lx, reporter := makeTestLexer(`"unterminated`)
	lx.All()
	if !reporter.hasCode(diag.LexUnterminatedString) {
		t.Errorf("expected LexUnterminatedString, got %v", reporter.diagnostics)
	}
}

func TestLexSpliceMarkerChars(t *testing.T) {
	// "[<" and ">]" are two tokens each; grouping happens in the tree builder
	expectKinds(t, "[<foo>]",
		token.LBracket, token.Lt, token.Ident, token.Gt, token.RBracket)
}

func TestLexOperators(t *testing.T) {
	expectKinds(t, ":: : -> => == != <= >= << >>",
		token.ColonColon, token.Colon, token.Arrow, token.FatArrow,
		token.EqEq, token.BangEq, token.LtEq, token.GtEq,
		token.Shl, token.Shr)
	expectKinds(t, "@ # $ ? ^ & | + - * / %",
		token.At, token.Pound, token.Dollar, token.Question, token.Caret,
		token.Amp, token.Pipe, token.Plus, token.Minus, token.Star,
		token.Slash, token.Percent)
}

func TestLexLeadingTrivia(t *testing.T) {
	lx, reporter := makeTestLexer("// comment\n  /* block */ foo")
	tok := lx.Next()
	if len(reporter.diagnostics) > 0 {
		t.Fatalf("reported %v", reporter.diagnostics)
	}
	if tok.Kind != token.Ident || tok.Text != "foo" {
		t.Fatalf("token = %v %q", tok.Kind, tok.Text)
	}

	var kinds []token.TriviaKind
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	hasLine, hasBlock := false, false
	for _, k := range kinds {
		switch k {
		case token.TriviaLineComment:
			hasLine = true
		case token.TriviaBlockComment:
			hasBlock = true
		}
	}
	if !hasLine || !hasBlock {
		t.Errorf("leading trivia = %v, want line and block comments", kinds)
	}
}

func TestLexSpans(t *testing.T) {
	lx, _ := makeTestLexer("ab cd")
	first := lx.Next()
	second := lx.Next()
	if first.Span.Start != 0 || first.Span.End != 2 {
		t.Errorf("first span = %v, want 0..2", first.Span)
	}
	if second.Span.Start != 3 || second.Span.End != 5 {
		t.Errorf("second span = %v, want 3..5", second.Span)
	}
}

func TestLexUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("foo \x01 bar")
	lx.All()
	if !reporter.hasCode(diag.LexUnknownChar) {
		t.Errorf("expected LexUnknownChar, got %v", reporter.diagnostics)
	}
}
