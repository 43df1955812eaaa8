package diagfmt

import (
	"encoding/json"
	"io"

	"splice/internal/source"
	"splice/internal/tokentree"
)

// TreeOutput mirrors one token-tree node for JSON output. Groups carry
// their delimiter and children, leaves their text.
type TreeOutput struct {
	Kind     string       `json:"kind"`
	Text     string       `json:"text,omitempty"`
	Lit      string       `json:"lit,omitempty"`
	Delim    string       `json:"delim,omitempty"`
	Span     source.Span  `json:"span"`
	Children []TreeOutput `json:"children,omitempty"`
}

// FormatTreeJSON writes a token tree as an indented JSON array of nodes.
func FormatTreeJSON(w io.Writer, stream tokentree.Stream) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(treeNodes(stream))
}

func treeNodes(stream tokentree.Stream) []TreeOutput {
	out := make([]TreeOutput, 0, len(stream))
	for _, t := range stream {
		node := TreeOutput{
			Kind: t.Kind.String(),
			Span: t.Span,
		}
		switch t.Kind {
		case tokentree.Group:
			node.Delim = t.Delim.Open() + t.Delim.Close()
			node.Children = treeNodes(t.Children)
		case tokentree.Literal:
			node.Text = t.Text
			node.Lit = t.Lit.String()
		default:
			node.Text = t.Text
		}
		out = append(out, node)
	}
	return out
}
