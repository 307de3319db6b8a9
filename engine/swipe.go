package engine

import "time"

const (
	// Offset stays zero until this much of the gesture has elapsed, so an
	// accidental tap is not read as a drag.
	swipeMinElapsed = 120 * time.Millisecond
	// Raw deltas older than the trailing window stop contributing.
	swipeWindow     = 200 * time.Millisecond
	swipeMaxSamples = 8
	// The virtual offset never exceeds this fraction of one field height.
	swipeClampFrac = 0.9
	// Resolve threshold: fraction of field height or absolute pixel floor,
	// whichever is larger.
	swipeMinFrac  = 0.2
	swipeFloorPx  = 3.0
	swipeSampleMs = 50 * time.Millisecond
)

type swipeSample struct {
	at    time.Time
	delta float64
}

// Swipe holds the in-flight gesture state: smoothing samples, the bounded
// virtual offset and the non-committing preview renderings. Committed field
// values and previews live in separate maps on purpose; a preview is never
// written into a Field.
type Swipe struct {
	active      bool
	started     time.Time
	fieldIdx    int
	height      float64
	samples     []swipeSample
	offset      float64
	previewUp   map[int]string
	previewDown map[int]string
}

func (s *Swipe) Active() bool    { return s.active }
func (s *Swipe) Offset() float64 { return s.offset }

func (s *Swipe) reset() {
	s.active = false
	s.samples = nil
	s.offset = 0
	s.previewUp = nil
	s.previewDown = nil
}

// SwipeStart begins a gesture on the selected field and primes the up/down
// previews without touching committed state.
func (e *Editor) SwipeStart(fieldHeight float64, now time.Time) bool {
	sel := e.seq.Selected()
	if sel == NoSelection {
		return false
	}
	e.swipe.reset()
	e.swipe.active = true
	e.swipe.started = now
	e.swipe.fieldIdx = sel
	e.swipe.height = fieldHeight
	e.primeSwipe(sel)
	return true
}

// primeSwipe computes "if the user commits an upward tick" and "if
// downward" renderings. A field whose preview text matches its committed
// text is left out, which suppresses dead gesture affordances on neighbors
// the tick would not visibly change.
func (e *Editor) primeSwipe(fieldIdx int) {
	e.swipe.previewUp = e.previewTexts(fieldIdx, +1)
	e.swipe.previewDown = e.previewTexts(fieldIdx, -1)
}

func (e *Editor) previewTexts(fieldIdx, dir int) map[int]string {
	candidate, outcome := e.previewRoll(fieldIdx, dir)
	if outcome == RollRejected {
		return nil
	}
	scratch := make([]Field, len(e.seq.Fields()))
	copy(scratch, e.seq.Fields())
	e.model.Decode(candidate, scratch)
	out := make(map[int]string)
	for i := range scratch {
		if scratch[i].Hidden {
			continue
		}
		if scratch[i].Text != e.seq.Field(i).Text {
			out[i] = scratch[i].Text
		}
	}
	return out
}

// PreviewUp returns the primed upward-tick text for a field, if it differs
// from the committed rendering.
func (e *Editor) PreviewUp(i int) (string, bool) {
	t, ok := e.swipe.previewUp[i]
	return t, ok
}

func (e *Editor) PreviewDown(i int) (string, bool) {
	t, ok := e.swipe.previewDown[i]
	return t, ok
}

// SwipeMove feeds one raw pointer displacement (positive = toward "roll
// up") and returns the smoothed, bounded virtual offset used for
// interpolated rendering.
func (e *Editor) SwipeMove(deltaPx float64, now time.Time) float64 {
	if !e.swipe.active {
		return 0
	}
	e.swipe.samples = append(e.swipe.samples, swipeSample{at: now, delta: deltaPx})
	e.recomputeOffset(now)
	e.timers.Start(TimerSwipe, now.Add(swipeSampleMs))
	return e.swipe.offset
}

// swipeSampleTick re-evaluates the offset as samples age out of the window.
func (e *Editor) swipeSampleTick(now time.Time) {
	if !e.swipe.active {
		return
	}
	e.recomputeOffset(now)
	if len(e.swipe.samples) > 0 {
		e.timers.Start(TimerSwipe, now.Add(swipeSampleMs))
	}
}

func (e *Editor) recomputeOffset(now time.Time) {
	s := &e.swipe
	cutoff := now.Add(-swipeWindow)
	kept := s.samples[:0]
	for _, sm := range s.samples {
		if sm.at.After(cutoff) {
			kept = append(kept, sm)
		}
	}
	if len(kept) > swipeMaxSamples {
		kept = kept[len(kept)-swipeMaxSamples:]
	}
	s.samples = kept

	if now.Sub(s.started) < swipeMinElapsed || len(kept) == 0 {
		s.offset = 0
		return
	}
	sum := 0.0
	for _, sm := range kept {
		sum += sm.delta
	}
	off := sum / float64(len(kept))
	limit := swipeClampFrac * s.height
	if off > limit {
		off = limit
	}
	if off < -limit {
		off = -limit
	}
	s.offset = off
}

// SwipeEnd resolves the gesture: past the threshold it issues one
// committing roll in the offset's direction, below it the gesture was a tap
// and nothing rolls. Previews are cleared either way.
func (e *Editor) SwipeEnd(now time.Time) RollOutcome {
	if !e.swipe.active {
		return RollRejected
	}
	offset := e.swipe.offset
	height := e.swipe.height
	fieldIdx := e.swipe.fieldIdx
	e.swipe.reset()
	e.timers.Cancel(TimerSwipe)

	threshold := swipeMinFrac * height
	if threshold < swipeFloorPx {
		threshold = swipeFloorPx
	}
	if offset >= -threshold && offset <= threshold {
		return RollRejected
	}
	dir := 1
	if offset < 0 {
		dir = -1
	}
	e.seq.Select(fieldIdx)
	return e.Roll(dir, now)
}

// SwipeCancel discards previews and pending offset state with no side
// effects on the committed value.
func (e *Editor) SwipeCancel() {
	e.swipe.reset()
	e.timers.Cancel(TimerSwipe)
}
