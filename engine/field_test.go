package engine

import "testing"

func clockFields() []Field {
	// h10 h1 : m10 m1
	return []Field{
		{Kind: KindDigit, Editable: true, Group: 0, Place: 1},
		{Kind: KindDigit, Editable: true, Group: 0, Place: 0},
		{Kind: KindSeparator, Text: ":"},
		{Kind: KindDigit, Editable: true, Group: 1, Place: 1},
		{Kind: KindDigit, Editable: true, Group: 1, Place: 0},
	}
}

func TestSequenceAssignsStableIndexes(t *testing.T) {
	s := NewSequence(clockFields(), false)
	for i, f := range s.Fields() {
		if f.Index != i {
			t.Fatalf("field %d has index %d", i, f.Index)
		}
	}
}

func TestMoveCursorSkipsSeparatorsAndStopsAtEnds(t *testing.T) {
	s := NewSequence(clockFields(), false)
	if !s.Select(0) {
		t.Fatal("select 0 refused")
	}
	if got := s.MoveCursor(1); got != 1 {
		t.Fatalf("move right = %d, want 1", got)
	}
	if got := s.MoveCursor(1); got != 3 {
		t.Fatalf("move right over separator = %d, want 3", got)
	}
	s.MoveCursor(1)
	if got := s.MoveCursor(1); got != NoSelection {
		t.Fatalf("move past end = %d, want sentinel", got)
	}
	// No wrap: moving right from the sentinel scans from the start again.
	if got := s.MoveCursor(1); got != 0 {
		t.Fatalf("move from sentinel = %d, want 0", got)
	}
}

func TestMoveCursorSkipsHidden(t *testing.T) {
	fs := clockFields()
	fs[1].Hidden = true
	s := NewSequence(fs, false)
	s.Select(0)
	if got := s.MoveCursor(1); got != 3 {
		t.Fatalf("move right = %d, want 3 (hidden field 1 skipped)", got)
	}
}

func TestSelectRefusesStaticAndHidden(t *testing.T) {
	fs := clockFields()
	fs[0].Hidden = true
	s := NewSequence(fs, false)
	if s.Select(2) {
		t.Fatal("selected a separator")
	}
	if s.Select(0) {
		t.Fatal("selected a hidden field")
	}
	if s.Select(99) {
		t.Fatal("selected out of range")
	}
	if !s.Select(NoSelection) {
		t.Fatal("sentinel selection refused")
	}
}

func TestDisplayOrderLTRFiltersHidden(t *testing.T) {
	fs := clockFields()
	fs[3].Hidden = true
	s := NewSequence(fs, false)
	want := []int{0, 1, 2, 4}
	got := s.DisplayOrder()
	if len(got) != len(want) {
		t.Fatalf("display order %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("display order %v, want %v", got, want)
		}
	}
}

func TestDisplayOrderRTLReversesDigitRuns(t *testing.T) {
	s := NewSequence(clockFields(), true)
	// Runs [0 1] and [3 4] each reverse as a unit around the separator.
	want := []int{1, 0, 2, 4, 3}
	got := s.DisplayOrder()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("display order %v, want %v", got, want)
		}
	}
}

func TestDisplayOrderRTLBidiContinuation(t *testing.T) {
	fs := []Field{
		{Kind: KindSign, Editable: true},
		{Kind: KindDigit, Editable: true},
		{Kind: KindDigit, Editable: true},
		{Kind: KindIndicator, Bidi: true, Text: "°"},
		{Kind: KindSeparator, Text: " "},
		{Kind: KindDigit, Editable: true},
	}
	s := NewSequence(fs, true)
	// Sign, digits and the bidi indicator flip as one run; the plain
	// separator breaks the run.
	want := []int{3, 2, 1, 0, 4, 5}
	got := s.DisplayOrder()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("display order %v, want %v", got, want)
		}
	}
}

func TestRecomputeDisplayDropsHiddenSelection(t *testing.T) {
	fs := clockFields()
	s := NewSequence(fs, false)
	s.Select(0)
	s.Field(0).Hidden = true
	s.RecomputeDisplay()
	if s.Selected() != NoSelection {
		t.Fatalf("selection = %d, want sentinel after hiding", s.Selected())
	}
}
