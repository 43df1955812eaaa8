package diagfmt

import (
	"encoding/json"
	"io"

	"splice/internal/diag"
	"splice/internal/source"
)

type jsonPosition struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonNote struct {
	Span source.Span `json:"span"`
	Msg  string      `json:"msg"`
}

type jsonDiagnostic struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Path     string        `json:"path"`
	Span     source.Span   `json:"span"`
	Start    *jsonPosition `json:"start,omitempty"`
	End      *jsonPosition `json:"end,omitempty"`
	Notes    []jsonNote    `json:"notes,omitempty"`
}

// JSON writes diagnostics as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     d.Primary,
		}
		if file := fs.Get(d.Primary.File); file != nil {
			jd.Path = displayPath(fs, file.Path, opts.PathMode)
		}
		if opts.IncludePositions {
			start, end := fs.Resolve(d.Primary)
			jd.Start = &jsonPosition{Line: start.Line, Col: start.Col}
			jd.End = &jsonPosition{Line: end.Line, Col: end.Col}
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jd.Notes = append(jd.Notes, jsonNote{Span: n.Span, Msg: n.Msg})
			}
		}
		out = append(out, jd)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
