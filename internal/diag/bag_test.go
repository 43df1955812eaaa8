package diag_test

import (
	"testing"

	"splice/internal/diag"
	"splice/internal/source"
)

func spanAt(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(diag.NewError(diag.SpliceMalformed, spanAt(0, 1), "one")) {
		t.Error("first add should succeed")
	}
	if !bag.Add(diag.NewError(diag.SpliceMalformed, spanAt(1, 2), "two")) {
		t.Error("second add should succeed")
	}
	if bag.Add(diag.NewError(diag.SpliceMalformed, spanAt(2, 3), "three")) {
		t.Error("add over the limit should be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := diag.NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("empty bag should report nothing")
	}

	bag.Add(diag.New(diag.SevWarning, diag.LexInfo, spanAt(0, 1), "warn"))
	if bag.HasErrors() {
		t.Error("warning is not an error")
	}
	if !bag.HasWarnings() {
		t.Error("warning should be visible")
	}

	bag.Add(diag.NewError(diag.SpliceEmptyUnit, spanAt(0, 1), "err"))
	if !bag.HasErrors() {
		t.Error("error should be visible")
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SpliceMalformed, spanAt(10, 12), "later"))
	bag.Add(diag.NewError(diag.SpliceEmptyUnit, spanAt(0, 2), "earlier"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "earlier" || items[1].Message != "later" {
		t.Errorf("sorted order wrong: %v", items)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SpliceMalformed, spanAt(0, 2), "dup"))
	bag.Add(diag.NewError(diag.SpliceMalformed, spanAt(0, 2), "dup again"))
	bag.Add(diag.NewError(diag.SpliceMalformed, spanAt(5, 7), "other span"))
	bag.Dedup()

	if bag.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMerge(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewError(diag.SpliceMalformed, spanAt(0, 1), "a"))

	b := diag.NewBag(1)
	b.Add(diag.NewError(diag.SpliceEmptyUnit, spanAt(1, 2), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("Len after Merge = %d, want 2", a.Len())
	}
}

func TestReportBuilder(t *testing.T) {
	bag := diag.NewBag(10)
	rep := diag.BagReporter{Bag: bag}

	diag.ReportError(rep, diag.SpliceUnknownModifier, spanAt(3, 8), "unknown modifier").
		WithNote(spanAt(0, 2), "unit starts here").
		Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.SpliceUnknownModifier || d.Severity != diag.SevError {
		t.Errorf("diagnostic = %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "unit starts here" {
		t.Errorf("notes = %v", d.Notes)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.NestUnclosedDelim, "NST2001"},
		{diag.SpliceMalformed, "SPL3001"},
		{diag.GenBadShape, "GEN4002"},
		{diag.IOLoadFileError, "IO5001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
