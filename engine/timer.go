package engine

import "time"

// TimerCat is one of the three pending-timer categories an editor instance
// may hold. At most one timer per category is ever active: starting a new
// one replaces the previous (its token goes stale), never stacks.
type TimerCat int

const (
	TimerRepeat TimerCat = iota
	TimerFlash
	TimerSwipe
	timerCats
)

// TimerSet models the per-instance deadlines without owning goroutines; the
// host schedules wakeups for the returned deadlines and hands fired tokens
// back through Editor.HandleTimer. Generation tokens make replacement and
// cancellation race-free even when a stale wakeup is already in flight.
type TimerSet struct {
	gen      [timerCats]uint64
	deadline [timerCats]time.Time
	active   [timerCats]bool
}

// Start arms (or re-arms) the category and returns the token a wakeup must
// present to fire.
func (t *TimerSet) Start(cat TimerCat, at time.Time) uint64 {
	t.gen[cat]++
	t.deadline[cat] = at
	t.active[cat] = true
	return t.gen[cat]
}

// Cancel disarms the category. Safe to call when nothing is pending.
func (t *TimerSet) Cancel(cat TimerCat) {
	t.gen[cat]++
	t.active[cat] = false
}

// Fire consumes the deadline if the token is still current. Stale and
// cancelled tokens report false.
func (t *TimerSet) Fire(cat TimerCat, token uint64) bool {
	if !t.active[cat] || token != t.gen[cat] {
		return false
	}
	t.active[cat] = false
	return true
}

// Deadline reports the pending wakeup for a category, if any.
func (t *TimerSet) Deadline(cat TimerCat) (time.Time, uint64, bool) {
	if !t.active[cat] {
		return time.Time{}, 0, false
	}
	return t.deadline[cat], t.gen[cat], true
}
