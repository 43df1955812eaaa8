package driver

import (
	"splice/internal/diag"
	"splice/internal/lexer"
	"splice/internal/paste"
	"splice/internal/source"
	"splice/internal/tokentree"
)

type ExpandResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    tokentree.Stream
	Output  string
	Bag     *diag.Bag
}

// Ok reports whether expansion produced a usable result. On failure Tree
// and Output are empty; diagnostics carry the details.
func (r *ExpandResult) Ok() bool {
	return r.Bag == nil || !r.Bag.HasErrors()
}

// Expand runs the full pipeline over one file: load, lex, build the token
// tree, resolve splice units, render. On any error the result carries
// diagnostics and no output.
func Expand(path string, maxDiagnostics int) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return expandFile(fs, fileID, maxDiagnostics), nil
}

// ExpandSource runs the pipeline over in-memory content registered under
// the given name. Used by tests and stdin expansion.
func ExpandSource(name string, content []byte, maxDiagnostics int) *ExpandResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return expandFile(fs, fileID, maxDiagnostics)
}

func expandFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ExpandResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}

	res := &ExpandResult{FileSet: fs, File: file, Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	tokens := lx.All()
	if bag.HasErrors() {
		return res
	}

	tree, ok := tokentree.Build(tokens, rep)
	if !ok {
		return res
	}

	expanded, ok := paste.Expand(tree, rep)
	if !ok {
		return res
	}

	res.Tree = expanded
	res.Output = tokentree.Render(expanded)
	return res
}
