package diag

import (
	"fmt"
)

// Code identifies a diagnostic category. Codes are grouped in numeric
// ranges per phase; ID() renders the stable textual form.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified failures.
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Delimiter nesting (2000-2999)
	NestInfo             Code = 2000
	NestUnclosedDelim    Code = 2001
	NestUnexpectedCloser Code = 2002
	NestMismatchedCloser Code = 2003

	// Splice engine (3000-3999)
	SpliceInfo                Code = 3000
	SpliceMalformed           Code = 3001 // unmatched or nested splice markers
	SpliceEmptyUnit           Code = 3002 // splice region with no fragments
	SpliceUnsupportedFragment Code = 3003 // token kind that cannot be concatenated
	SpliceUnknownModifier     Code = 3004 // modifier name outside the recognized set
	SpliceUnresolvedSpanRef   Code = 3005 // span() names a token that cannot be found

	// Boilerplate generators (4000-4999)
	GenInfo             Code = 4000
	GenUnknownGenerator Code = 4001
	GenBadShape         Code = 4002
	GenMissingField     Code = 4003
	GenDuplicateField   Code = 4004

	// I/O (5000-5999)
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	NestInfo:                    "Nesting information",
	NestUnclosedDelim:           "Unclosed delimiter",
	NestUnexpectedCloser:        "Unexpected closing delimiter",
	NestMismatchedCloser:        "Mismatched closing delimiter",
	SpliceInfo:                  "Splice information",
	SpliceMalformed:             "Malformed splice syntax",
	SpliceEmptyUnit:             "Empty splice unit",
	SpliceUnsupportedFragment:   "Unsupported fragment kind",
	SpliceUnknownModifier:       "Unknown modifier",
	SpliceUnresolvedSpanRef:     "Unresolved span reference",
	GenInfo:                     "Generator information",
	GenUnknownGenerator:         "Unknown generator",
	GenBadShape:                 "Malformed declaration shape",
	GenMissingField:             "Missing required field",
	GenDuplicateField:           "Duplicate field",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("NST%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SPL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
