package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"splice/internal/diag"
	"splice/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	noteColor = color.New(color.FgBlue)
	markColor = color.New(color.FgRed)
)

// Pretty renders diagnostics in a human-readable form, one per block:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//	  <source line>
//	  ^~~~ underline covering the span
//
// followed by notes when opts.ShowNotes is set. Callers are expected to
// bag.Sort() beforehand for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiag(w, &d, fs, opts)
	}
}

func printDiag(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s [%s]: %s\n",
		location(fs, d.Primary, opts),
		severityLabel(d.Severity, opts.Color),
		d.Code.ID(),
		d.Message)
	printContext(w, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s: %s\n", location(fs, n.Span, opts), label, n.Msg)
			printContext(w, fs, n.Span, opts)
		}
	}
}

// printContext prints the first line of the span with a caret underline.
// Multi-line spans underline to the end of the first line.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if sp.Empty() && sp.Start == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	runes := []rune(line)
	startCol := int(start.Col) - 1
	if startCol > len(runes) {
		startCol = len(runes)
	}
	endCol := len(runes)
	if end.Line == start.Line {
		endCol = int(end.Col) - 1
		if endCol > len(runes) {
			endCol = len(runes)
		}
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}

	pad := runewidth.StringWidth(string(runes[:startCol]))
	width := runewidth.StringWidth(string(runes[startCol:min(endCol, len(runes))]))
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = markColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func location(fs *source.FileSet, sp source.Span, opts PrettyOpts) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(fs, file.Path, opts.PathMode), start.Line, start.Col)
}

func displayPath(fs *source.FileSet, path string, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeRelative, PathModeAuto:
		base := fs.BaseDir()
		if base == "" {
			return path
		}
		rel, err := filepath.Rel(base, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return path
		}
		if mode == PathModeAuto && len(rel) >= len(path) {
			return path
		}
		return rel
	}
	return path
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := strings.ToUpper(sev.String())
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}
