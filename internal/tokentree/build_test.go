package tokentree_test

import (
	"testing"

	"splice/internal/diag"
	"splice/internal/lexer"
	"splice/internal/source"
	"splice/internal/token"
	"splice/internal/tokentree"
)

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

func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mx", []byte(input))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	return lx.All()
}

func TestBuildNesting(t *testing.T) {
	rep := &testReporter{}
	stream, ok := tokentree.Build(lexAll(t, "fn foo ( a , [ b ] ) { c }"), rep)
	if !ok {
		t.Fatalf("Build failed: %v", rep.diagnostics)
	}

	if len(stream) != 4 {
		t.Fatalf("top level has %d tokens, want 4", len(stream))
	}
	paren := stream[2]
	if paren.Kind != tokentree.Group || paren.Delim != tokentree.DelimParen {
		t.Fatalf("stream[2] = %v, want paren group", paren.Kind)
	}
	if len(paren.Children) != 3 {
		t.Fatalf("paren group has %d children, want 3", len(paren.Children))
	}
	if inner := paren.Children[2]; inner.Delim != tokentree.DelimBracket {
		t.Errorf("nested group delim = %v, want bracket", inner.Delim)
	}
	if brace := stream[3]; brace.Delim != tokentree.DelimBrace {
		t.Errorf("stream[3] delim = %v, want brace", brace.Delim)
	}
}

func TestBuildGroupSpanCoversDelimiters(t *testing.T) {
	rep := &testReporter{}
	stream, ok := tokentree.Build(lexAll(t, "( abc )"), rep)
	if !ok {
		t.Fatalf("Build failed: %v", rep.diagnostics)
	}
	sp := stream[0].Span
	if sp.Start != 0 || sp.End != 7 {
		t.Errorf("group span = %v, want 0..7", sp)
	}
}

func TestBuildLeafKinds(t *testing.T) {
	rep := &testReporter{}
	stream, ok := tokentree.Build(lexAll(t, `x _ 42 1.5 "s" +`), rep)
	if !ok {
		t.Fatalf("Build failed: %v", rep.diagnostics)
	}

	wantKinds := []tokentree.Kind{
		tokentree.Ident, tokentree.Ident,
		tokentree.Literal, tokentree.Literal, tokentree.Literal,
		tokentree.Punct,
	}
	if len(stream) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(stream), len(wantKinds))
	}
	for i, want := range wantKinds {
		if stream[i].Kind != want {
			t.Errorf("stream[%d].Kind = %v, want %v", i, stream[i].Kind, want)
		}
	}
	wantLits := []tokentree.LitKind{tokentree.LitInt, tokentree.LitFloat, tokentree.LitString}
	for i, want := range wantLits {
		if stream[2+i].Lit != want {
			t.Errorf("literal %d kind = %v, want %v", i, stream[2+i].Lit, want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unclosed paren", "( a b", diag.NestUnclosedDelim},
		{"unclosed bracket", "[ <", diag.NestUnclosedDelim},
		{"unexpected closer", "a )", diag.NestUnexpectedCloser},
		{"mismatched closer", "( a ]", diag.NestMismatchedCloser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &testReporter{}
			stream, ok := tokentree.Build(lexAll(t, tt.input), rep)
			if ok {
				t.Fatalf("Build(%q) succeeded, want %s", tt.input, tt.code.ID())
			}
			if stream != nil {
				t.Errorf("Build(%q) returned a stream alongside failure", tt.input)
			}
			if !rep.hasCode(tt.code) {
				t.Errorf("Build(%q) reported %v, want %s", tt.input, rep.diagnostics, tt.code.ID())
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fn foo ( x , y )", "fn foo (x, y)"},
		{"a : b :: c", "a:b::c"},
		{"@ attr x ; y", "@attr x; y"},
		{"{ nested ( deep ) }", "{nested (deep)}"},
	}
	for _, tt := range tests {
		rep := &testReporter{}
		stream, ok := tokentree.Build(lexAll(t, tt.input), rep)
		if !ok {
			t.Fatalf("Build(%q) failed: %v", tt.input, rep.diagnostics)
		}
		if got := tokentree.Render(stream); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEqualIgnoresSpans(t *testing.T) {
	sp1 := source.Span{File: 0, Start: 0, End: 3}
	sp2 := source.Span{File: 0, Start: 10, End: 13}

	a := tokentree.Stream{tokentree.NewIdent("foo", sp1)}
	b := tokentree.Stream{tokentree.NewIdent("foo", sp2)}
	if !tokentree.Equal(a, b) {
		t.Error("Equal should ignore spans")
	}

	c := tokentree.Stream{tokentree.NewIdent("bar", sp1)}
	if tokentree.Equal(a, c) {
		t.Error("Equal should compare text")
	}

	g1 := tokentree.Stream{tokentree.NewGroup(tokentree.DelimParen, a, sp1)}
	g2 := tokentree.Stream{tokentree.NewGroup(tokentree.DelimBracket, a, sp1)}
	if tokentree.Equal(g1, g2) {
		t.Error("Equal should compare delimiters")
	}
}
