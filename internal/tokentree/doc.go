// Package tokentree represents a lexical token sequence as a nested tree:
// identifiers, literals, punctuation, and delimited groups, each carrying
// a provenance span. Streams are treated as immutable: every transformation
// builds a fresh stream instead of mutating in place, and structural
// equality deliberately ignores spans.
package tokentree
