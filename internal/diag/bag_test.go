package diag

import (
	"testing"

	"sable/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagAddHonorsLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SynUnexpectedToken, span(0, 0, 1), "first")) {
		t.Fatal("first Add rejected")
	}
	if !b.Add(NewError(SynUnexpectedToken, span(0, 1, 2), "second")) {
		t.Fatal("second Add rejected")
	}
	if b.Add(NewError(SynUnexpectedToken, span(0, 2, 3), "third")) {
		t.Fatal("third Add accepted past the limit")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(8)
	// Deliberately out of order: later file, later offset,
	// warning before error at the same span.
	b.Add(NewError(SynUnexpectedToken, span(1, 0, 1), "file 1"))
	b.Add(NewWarning(EmitNullCheckedNullDefault, span(0, 4, 6), "warn at 4"))
	b.Add(NewError(BindNullCheckSignatureOnly, span(0, 4, 6), "error at 4"))
	b.Add(NewError(SynUnexpectedToken, span(0, 0, 2), "error at 0"))
	b.Sort()

	got := b.Items()
	wantMsgs := []string{"error at 0", "error at 4", "warn at 4", "file 1"}
	for i, want := range wantMsgs {
		if got[i].Message != want {
			t.Errorf("item %d: got %q, want %q", i, got[i].Message, want)
		}
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SynUnexpectedToken, span(0, 0, 1), "a"))

	other := NewBag(2)
	other.Add(NewError(SynUnexpectedToken, span(0, 1, 2), "b"))
	other.Add(NewWarning(EmitNullCheckedNullDefault, span(0, 2, 3), "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("Len after merge = %d, want 3", a.Len())
	}
	a.Merge(nil)
	if a.Len() != 3 {
		t.Fatalf("Len after nil merge = %d, want 3", a.Len())
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(4)
	b.Add(NewError(SynUnexpectedToken, span(0, 0, 1), "dup"))
	b.Add(NewError(SynUnexpectedToken, span(0, 0, 1), "dup"))
	b.Add(NewError(SynUnexpectedToken, span(0, 1, 2), "other span"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("Len after dedup = %d, want 2", b.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(4)
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("empty bag reports diagnostics")
	}
	b.Add(NewWarning(EmitNullCheckedNullDefault, span(0, 0, 1), "w"))
	if b.HasErrors() {
		t.Fatal("warning counted as error")
	}
	if !b.HasWarnings() {
		t.Fatal("warning not counted")
	}
	b.Add(NewError(BindNullCheckSignatureOnly, span(0, 1, 2), "e"))
	if !b.HasErrors() {
		t.Fatal("error not counted")
	}
	if b.CountBy(BindNullCheckSignatureOnly) != 1 {
		t.Fatalf("CountBy = %d, want 1", b.CountBy(BindNullCheckSignatureOnly))
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{BindNullCheckSignatureOnly, "SEM3001"},
		{EmitNullCheckedNullDefault, "SEM3002"},
		{IOLoadFileError, "IO4001"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
