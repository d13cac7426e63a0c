package source_test

import (
	"testing"

	"sable/internal/source"
)

func TestSpanBasics(t *testing.T) {
	s := source.Span{File: 0, Start: 3, End: 7}
	if s.Empty() || s.Len() != 4 {
		t.Errorf("unexpected span: empty=%v len=%d", s.Empty(), s.Len())
	}
	if (source.Span{Start: 5, End: 5}).Empty() != true {
		t.Error("zero-length span must be empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 2, End: 4}
	b := source.Span{File: 0, Start: 6, End: 9}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %v", got)
	}
	// Different files do not merge.
	c := source.Span{File: 1, Start: 0, End: 1}
	if got := a.Cover(c); got != a {
		t.Errorf("cross-file Cover = %v, want %v", got, a)
	}
}

func TestSpanAdjacent(t *testing.T) {
	a := source.Span{File: 0, Start: 2, End: 4}
	tests := []struct {
		other source.Span
		want  bool
	}{
		{source.Span{File: 0, Start: 4, End: 5}, true},
		{source.Span{File: 0, Start: 5, End: 6}, false},
		{source.Span{File: 0, Start: 3, End: 5}, false},
		{source.Span{File: 1, Start: 4, End: 5}, false},
	}
	for _, tt := range tests {
		if got := a.Adjacent(tt.other); got != tt.want {
			t.Errorf("Adjacent(%v) = %v, want %v", tt.other, got, tt.want)
		}
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sb", []byte("ab\ncd\nef"))

	tests := []struct {
		offset   uint32
		wantLine uint32
		wantCol  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{8, 3, 3}, // one past the end
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.offset, End: tt.offset})
		if start.Line != tt.wantLine || start.Col != tt.wantCol {
			t.Errorf("offset %d: got %d:%d, want %d:%d",
				tt.offset, start.Line, start.Col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sb", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sb", []byte("a\nb"))
	if fs.Get(id).Path != "t.sb" {
		t.Errorf("unexpected path %q", fs.Get(id).Path)
	}
	if fs.Len() != 1 {
		t.Errorf("expected 1 file, got %d", fs.Len())
	}
}
