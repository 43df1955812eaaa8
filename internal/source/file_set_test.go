package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"splice/internal/source"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("virt.mx", []byte("abc\ndef\nghi"))

	start, end := fs.Resolve(source.Span{File: fileID, Start: 4, End: 7})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %+v, want 2:1", start)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %+v, want 2:4", end)
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.mx")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	file := fs.Get(fileID)

	if string(file.Content) != "a\nb\n" {
		t.Errorf("content = %q, want CRLF normalized", file.Content)
	}
	if file.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF flag not set")
	}
}

func TestLoadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.mx")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbfabc"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	file := fs.Get(fileID)

	if string(file.Content) != "abc" {
		t.Errorf("content = %q, want BOM stripped", file.Content)
	}
	if file.Flags&source.FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("lines.mx", []byte("first\nsecond\nthird"))
	file := fs.Get(fileID)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{0, ""},
		{9, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestGetByPath(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a.mx", []byte("x"))

	if _, ok := fs.GetByPath("a.mx"); !ok {
		t.Error("GetByPath should find a registered file")
	}
	if _, ok := fs.GetByPath("missing.mx"); ok {
		t.Error("GetByPath should miss an unknown path")
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 2, End: 5}
	b := source.Span{File: 0, Start: 7, End: 9}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 9 {
		t.Errorf("Cover = %+v, want 2..9", c)
	}
}
