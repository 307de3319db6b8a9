package engine

import "time"

// RollOutcome reports how a tick landed.
type RollOutcome int

const (
	RollApplied RollOutcome = iota
	RollWrapped
	RollRejected
)

// Roll applies a ±1 tick to the field under the cursor, in units of the
// composite value, carrying into neighboring fields through the underlying
// arithmetic. Out-of-range candidates wrap modulo the legal span when the
// value kind allows it (warning), otherwise the edit is rejected (error).
func (e *Editor) Roll(dir int, now time.Time) RollOutcome {
	sel := e.seq.Selected()
	if sel == NoSelection || dir == 0 {
		return RollRejected
	}
	e.resolveEdit(now)
	f := *e.seq.Field(sel)

	if f.Kind == KindSign {
		return e.rollSign(now)
	}
	e.pendingFlip = false

	candidate, outcome := e.previewRoll(sel, dir)
	switch outcome {
	case RollRejected:
		e.feedback.Signal(FlashError, "limit reached", &e.timers, now)
		return RollRejected
	case RollWrapped:
		e.feedback.Signal(FlashWarning, "wrapped around", &e.timers, now)
	}
	e.commit(candidate)
	return outcome
}

// rollSign negates the magnitude. Direction does not matter: one tick in
// either direction lands on -current. At zero magnitude the negation has no
// numeric effect, so pendingFlip keeps the visible token toggle honest
// until the next distinct edit.
func (e *Editor) rollSign(now time.Time) RollOutcome {
	if e.value == 0 {
		e.pendingFlip = !e.pendingFlip
		e.render()
		return RollApplied
	}
	candidate := -e.value
	if e.outOfWindow(candidate) {
		e.feedback.Signal(FlashError, "limit reached", &e.timers, now)
		return RollRejected
	}
	e.pendingFlip = false
	e.commit(candidate)
	return RollApplied
}

// previewRoll runs the roll arithmetic without mutating anything. The swipe
// predictor uses it to compute gesture previews.
func (e *Editor) previewRoll(fieldIdx, dir int) (int64, RollOutcome) {
	f := *e.seq.Field(fieldIdx)
	if f.Kind == KindSign {
		candidate := -e.value
		if e.outOfWindow(candidate) {
			return e.value, RollRejected
		}
		return candidate, RollApplied
	}
	candidate := e.model.Shift(e.value, f, dir)
	lo, hi, wrap := e.model.Range()
	if candidate < lo || candidate > hi {
		if !wrap {
			return e.value, RollRejected
		}
		span := hi - lo + 1
		candidate = lo + floorMod(candidate-lo, span)
		if e.min.violates(candidate) || e.max.violates(candidate) {
			return e.value, RollRejected
		}
		return candidate, RollWrapped
	}
	if e.min.violates(candidate) || e.max.violates(candidate) {
		return e.value, RollRejected
	}
	return candidate, RollApplied
}

// TypeDigit overwrites the selected digit field. The digit is legal when
// some assignment of the remaining digits in the same component group lands
// inside the group's span; a tens-of-month 1 passes (10..12 exist), a 2 is
// rejected outright. A calendar-invalid but group-legal combination (Feb 30
// mid-edit) is kept as field text and normalized when the edit resolves.
func (e *Editor) TypeDigit(d int, now time.Time) bool {
	sel := e.seq.Selected()
	if sel == NoSelection || d < 0 || d > 9 {
		e.feedback.Signal(FlashError, "illegal keystroke", &e.timers, now)
		return false
	}
	f := e.seq.Field(sel)
	if f.Kind != KindDigit || !f.Editable {
		e.feedback.Signal(FlashError, "illegal keystroke", &e.timers, now)
		return false
	}
	e.pendingFlip = false
	if !e.digitFeasible(f, d) {
		e.feedback.Signal(FlashError, "digit out of range", &e.timers, now)
		return false
	}

	prevDigit, prevText := f.Digit, f.Text
	f.Digit = d
	f.Text = string(rune('0' + d))

	candidate, err := e.model.Encode(e.seq.Fields())
	if err != nil {
		// Tolerated mid-edit; settles when the cursor leaves or focus drops.
		e.pendingEdit = true
		return true
	}
	if e.outOfWindow(candidate) {
		lo, hi, wrap := e.model.Range()
		if wrap && (candidate < lo || candidate > hi) {
			span := hi - lo + 1
			wrapped := lo + floorMod(candidate-lo, span)
			if !e.min.violates(wrapped) && !e.max.violates(wrapped) {
				e.feedback.Signal(FlashWarning, "wrapped around", &e.timers, now)
				e.commit(wrapped)
				return true
			}
		}
		f.Digit, f.Text = prevDigit, prevText
		e.feedback.Signal(FlashError, "out of bounds", &e.timers, now)
		return false
	}
	e.commit(candidate)
	return true
}

// digitFeasible checks the field-local legal span: with digit d fixed at
// this place, can the other digits of the group complete to a legal value.
func (e *Editor) digitFeasible(f *Field, d int) bool {
	if f.Group < 0 {
		return true
	}
	lo, hi := e.model.GroupSpan(f.Group, e.seq.Fields())
	fixed := d * pow10(f.Place)
	free := 0
	for _, g := range e.seq.Fields() {
		if g.Kind == KindDigit && g.Group == f.Group && g.Index != f.Index {
			free += 9 * pow10(g.Place)
		}
	}
	return fixed <= hi && fixed+free >= lo
}

// outOfWindow reports whether v breaks the model range or a bound limit.
func (e *Editor) outOfWindow(v int64) bool {
	lo, hi, _ := e.model.Range()
	if v < lo || v > hi {
		return true
	}
	return e.min.violates(v) || e.max.violates(v)
}

func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
