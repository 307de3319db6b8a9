package engine

import "testing"

// fakeComps models a three-component value encoded as hundreds/tens/ones,
// with component spans [1..9], [0..9], [0..5].
type fakeComps struct{}

func (fakeComps) Count() int { return 3 }
func (fakeComps) Split(v int64) []int {
	return []int{int(v / 100), int(v / 10 % 10), int(v % 10)}
}
func (fakeComps) Join(parts []int) (int64, error) {
	return int64(parts[0]*100 + parts[1]*10 + parts[2]), nil
}
func (fakeComps) CompMin(i int, prefix []int) int {
	if i == 0 {
		return 1
	}
	return 0
}
func (fakeComps) CompMax(i int, prefix []int) int {
	switch i {
	case 0:
		return 9
	case 1:
		return 9
	}
	return 5
}

func TestExactCompare(t *testing.T) {
	l := Exact(Low, 500)
	if got := l.Compare(499); got != -1 {
		t.Fatalf("compare(499) = %d, want -1", got)
	}
	if got := l.Compare(500); got != 0 {
		t.Fatalf("compare(500) = %d, want 0", got)
	}
	if got := l.Compare(501); got != 1 {
		t.Fatalf("compare(501) = %d, want 1", got)
	}
}

func TestPartialCompareIgnoresUnspecifiedComponents(t *testing.T) {
	l, err := Partial(Low, []int{5}, fakeComps{})
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	for _, v := range []int64{500, 505, 595} {
		if got := l.Compare(v); got != 0 {
			t.Fatalf("compare(%d) = %d, want 0 (inside window)", v, got)
		}
	}
	if got := l.Compare(495); got != -1 {
		t.Fatalf("compare(495) = %d, want -1", got)
	}
	if got := l.Compare(600); got != 1 {
		t.Fatalf("compare(600) = %d, want 1", got)
	}
}

func TestPartialResolveFillsExtremes(t *testing.T) {
	lo, err := Partial(Low, []int{5}, fakeComps{})
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	if got := lo.Resolve(); got != 500 {
		t.Fatalf("low resolve = %d, want 500", got)
	}
	hi, err := Partial(High, []int{5}, fakeComps{})
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	if got := hi.Resolve(); got != 595 {
		t.Fatalf("high resolve = %d, want 595 (component max is 5)", got)
	}
}

func TestPartialClamp(t *testing.T) {
	hi, err := Partial(High, []int{5, 2}, fakeComps{})
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	if got := hi.Clamp(531); got != 525 {
		t.Fatalf("clamp(531) = %d, want 525", got)
	}
	if got := hi.Clamp(500); got != 500 {
		t.Fatalf("clamp(500) = %d, want unchanged", got)
	}
}

func TestPartialRejectsMalformedSpecs(t *testing.T) {
	if _, err := Partial(Low, nil, fakeComps{}); err == nil {
		t.Fatal("empty component list accepted")
	}
	if _, err := Partial(Low, []int{1, 2, 3, 4}, fakeComps{}); err == nil {
		t.Fatal("oversized component list accepted")
	}
	if _, err := Partial(Low, []int{0}, fakeComps{}); err == nil {
		t.Fatal("component below minimum accepted")
	}
	if _, err := Partial(High, []int{5, 3, 9}, fakeComps{}); err == nil {
		t.Fatal("component above maximum accepted")
	}
}

func TestViolates(t *testing.T) {
	var nilLimit *Limit
	if nilLimit.violates(0) {
		t.Fatal("nil limit should never be violated")
	}
	lo := Exact(Low, 100)
	hi := Exact(High, 200)
	if lo.violates(100) || hi.violates(200) {
		t.Fatal("boundary values are inside")
	}
	if !lo.violates(99) {
		t.Fatal("99 should violate min 100")
	}
	if !hi.violates(201) {
		t.Fatal("201 should violate max 200")
	}
}
