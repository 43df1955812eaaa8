// Package driver orchestrates the expansion pipeline: file loading,
// lexing, tree building, splice expansion, and the disk cache.
package driver

import (
	"splice/internal/diag"
	"splice/internal/lexer"
	"splice/internal/source"
	"splice/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file and lexes it to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.All(),
		Bag:     bag,
	}, nil
}
