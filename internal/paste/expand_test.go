package paste_test

import (
	"testing"

	"splice/internal/diag"
	"splice/internal/lexer"
	"splice/internal/paste"
	"splice/internal/source"
	"splice/internal/tokentree"
)

// testReporter collects every diagnostic reported during expansion.
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

func (r *testReporter) codes() []diag.Code {
	codes := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

// mustTree lexes and groups input, failing the test on any diagnostic.
func mustTree(t *testing.T, input string) (tokentree.Stream, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mx", []byte(input))

	rep := &testReporter{}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: rep})
	tree, ok := tokentree.Build(lx.All(), rep)
	if !ok || len(rep.diagnostics) > 0 {
		t.Fatalf("input %q did not tokenize cleanly: %v", input, rep.diagnostics)
	}
	return tree, fs
}

// expandSource runs the expander over input and renders the result.
func expandSource(t *testing.T, input string) (string, *testReporter, bool) {
	t.Helper()
	tree, _ := mustTree(t, input)
	rep := &testReporter{}
	out, ok := paste.Expand(tree, rep)
	if !ok {
		return "", rep, false
	}
	return tokentree.Render(out), rep, true
}

func expectExpansion(t *testing.T, input, want string) {
	t.Helper()
	got, rep, ok := expandSource(t, input)
	if !ok {
		t.Fatalf("Expand(%q) failed: %v", input, rep.diagnostics)
	}
	if got != want {
		t.Errorf("Expand(%q) = %q, want %q", input, got, want)
	}
}

func expectFailure(t *testing.T, input string, code diag.Code) {
	t.Helper()
	tree, _ := mustTree(t, input)
	rep := &testReporter{}
	out, ok := paste.Expand(tree, rep)
	if ok {
		t.Fatalf("Expand(%q) succeeded with %q, want code %s", input, tokentree.Render(out), code.ID())
	}
	if out != nil {
		t.Errorf("Expand(%q) returned a stream alongside failure", input)
	}
	found := false
	for _, c := range rep.codes() {
		if c == code {
			found = true
		}
	}
	if !found {
		t.Errorf("Expand(%q) reported %v, want %s", input, rep.codes(), code.ID())
	}
}

func TestExpandBasicConcatenation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two idents", "[<foo bar>]", "foobar"},
		{"underscore fragment", "[<foo _ bar>]", "foo_bar"},
		{"ident and int literal", "[<item 42>]", "item42"},
		{"leading underscore", "[<_ foo>]", "_foo"},
		{"string literal fragment", `[<handle "irq">]`, "handleirq"},
		{"surrounded by tokens", "fn [<get x>] ( ) { }", "fn getx () {}"},
		{"two units", "[<a b>] = [<c d>] ;", "ab = cd;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectExpansion(t, tt.input, tt.want)
		})
	}
}

func TestExpandCaseModifiers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lower", "[<FOO:lower>]", "foo"},
		{"upper", "[<foo:upper>]", "FOO"},
		{"lower on one fragment only", "[<FOO:lower _ BAR>]", "foo_BAR"},
		{"lower then upper, last wins", "[<foo:lower:upper>]", "FOO"},
		{"upper then lower, last wins", "[<FOO:upper:lower>]", "foo"},
		{"unicode case folding", "[<straße:upper>]", "STRASSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectExpansion(t, tt.input, tt.want)
		})
	}
}

func TestExpandNestedGroups(t *testing.T) {
	expectExpansion(t, "( [<a b>] )", "(ab)")
	expectExpansion(t, "{ fn [<do it>] ( ) ; }", "{fn doit ();}")
	expectExpansion(t, "outer ( inner { [<deep est>] } )", "outer (inner {deepest})")
}

func TestExpandIdempotence(t *testing.T) {
	inputs := []string{
		"fn foo ( x , y ) { x + y }",
		"struct Point { x : i32 , y : i32 }",
		"a [ b ] < c > d",
	}
	for _, input := range inputs {
		tree, _ := mustTree(t, input)
		rep := &testReporter{}
		out, ok := paste.Expand(tree, rep)
		if !ok {
			t.Fatalf("Expand(%q) failed: %v", input, rep.diagnostics)
		}
		if !tokentree.Equal(tree, out) {
			t.Errorf("Expand(%q) changed a marker-free stream:\n  in:  %s\n  out: %s",
				input, tokentree.Render(tree), tokentree.Render(out))
		}
	}
}

func TestExpandPreservesSurroundingTokens(t *testing.T) {
	input := "keep1 ( keep2 [<a b>] keep3 ) keep4"
	tree, _ := mustTree(t, input)
	rep := &testReporter{}
	out, ok := paste.Expand(tree, rep)
	if !ok {
		t.Fatalf("Expand failed: %v", rep.diagnostics)
	}

	// tokens outside the unit keep identity and order
	if out[0].Text != "keep1" || out[2].Text != "keep4" {
		t.Errorf("top level reordered: %s", tokentree.Render(out))
	}
	inner := out[1].Children
	if len(inner) != 3 || inner[0].Text != "keep2" || inner[1].Text != "ab" || inner[2].Text != "keep3" {
		t.Errorf("group contents wrong: %s", tokentree.Render(out))
	}
	if inner[0].Span != tree[1].Children[0].Span {
		t.Errorf("untouched token lost its span")
	}
}

func TestExpandResultSpan(t *testing.T) {
	// without a span modifier the result carries the unit's span
	tree, _ := mustTree(t, "[<foo bar>]")
	rep := &testReporter{}
	out, ok := paste.Expand(tree, rep)
	if !ok {
		t.Fatalf("Expand failed: %v", rep.diagnostics)
	}
	if len(out) != 1 {
		t.Fatalf("got %d tokens, want 1", len(out))
	}
	if out[0].Span != tree[0].Span {
		t.Errorf("result span = %v, want unit span %v", out[0].Span, tree[0].Span)
	}
}

func TestExpandSpanModifier(t *testing.T) {
	// bare span re-tags with the fragment's own provenance
	tree, _ := mustTree(t, "[<foo bar:span>]")
	rep := &testReporter{}
	out, ok := paste.Expand(tree, rep)
	if !ok {
		t.Fatalf("Expand failed: %v", rep.diagnostics)
	}
	fragSpan := tree[0].Children[2].Span // bar inside [< ... >]
	if out[0].Span != fragSpan {
		t.Errorf("result span = %v, want fragment span %v", out[0].Span, fragSpan)
	}
}

func TestExpandSpanReference(t *testing.T) {
	// span(ref) re-tags with the provenance of the named identifier
	tree, _ := mustTree(t, "anchor [<foo bar:span(anchor)>]")
	rep := &testReporter{}
	out, ok := paste.Expand(tree, rep)
	if !ok {
		t.Fatalf("Expand failed: %v", rep.diagnostics)
	}
	if len(out) != 2 {
		t.Fatalf("got %d tokens, want 2", len(out))
	}
	if out[1].Span != tree[0].Span {
		t.Errorf("result span = %v, want anchor span %v", out[1].Span, tree[0].Span)
	}
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unmatched open marker", "[< foo bar ]", diag.SpliceMalformed},
		{"nested splice unit", "[<foo [<bar>] >]", diag.SpliceMalformed},
		{"empty unit", "[<>]", diag.SpliceEmptyUnit},
		{"punct in unit", "[<foo + bar>]", diag.SpliceUnsupportedFragment},
		{"group in unit", "[<foo (bar)>]", diag.SpliceUnsupportedFragment},
		{"float literal", "[<foo 1.5>]", diag.SpliceUnsupportedFragment},
		{"digit-leading result", "[<42 foo>]", diag.SpliceUnsupportedFragment},
		{"unsafe string literal", `[<foo "a-b">]`, diag.SpliceUnsupportedFragment},
		{"unknown modifier", "[<foo:shout>]", diag.SpliceUnknownModifier},
		{"modifier without fragment", "[<:lower foo>]", diag.SpliceMalformed},
		{"dangling colon", "[<foo:>]", diag.SpliceMalformed},
		{"unresolved span reference", "[<foo:span(missing)>]", diag.SpliceUnresolvedSpanRef},
		{"duplicate span modifier", "[<foo:span bar:span>]", diag.SpliceMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectFailure(t, tt.input, tt.code)
		})
	}
}

func TestExpandErrorNoPartialOutput(t *testing.T) {
	// a failing unit poisons the whole invocation, even sibling units
	expectFailure(t, "[<ok unit>] [<bad +>]", diag.SpliceUnsupportedFragment)
}

func TestReassemble(t *testing.T) {
	sp := source.Span{}
	orig := tokentree.Stream{
		tokentree.NewIdent("a", sp),
		tokentree.NewIdent("b", sp),
		tokentree.NewIdent("c", sp),
		tokentree.NewIdent("d", sp),
	}

	out := paste.Reassemble(orig, []paste.Replacement{
		{Lo: 1, Hi: 3, Tok: tokentree.NewIdent("bc", sp)},
	})
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0].Text != "a" || out[1].Text != "bc" || out[2].Text != "d" {
		t.Errorf("got %s", tokentree.Render(out))
	}

	// no replacements returns the original stream untouched
	same := paste.Reassemble(orig, nil)
	if !tokentree.Equal(orig, same) {
		t.Errorf("empty replacement list changed the stream")
	}
}
