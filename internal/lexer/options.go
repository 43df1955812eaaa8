package lexer

import (
	"splice/internal/diag"
	"splice/internal/source"
)

// Options configures a Lexer.
type Options struct {
	Reporter diag.Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
