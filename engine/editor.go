package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldModel is the per-domain strategy behind the generic editor engine.
// One implementation exists per value domain (time, angle); the engine never
// subclasses or special-cases a domain beyond what this interface exposes.
type FieldModel interface {
	// BuildFields lays out the field list for the configured format.
	BuildFields() []Field
	// Decode writes a composite value into the field contents.
	Decode(v int64, fields []Field)
	// Encode reads the field contents back into a composite value. It fails
	// on calendar-invalid combinations (Feb 30); such states are tolerated
	// mid-edit and normalized later.
	Encode(fields []Field) (int64, error)
	// Normalize is the lenient counterpart of Encode: every component group
	// is clamped into its legal span before composing.
	Normalize(fields []Field) int64
	// Shift applies n ticks of the given field's unit to v without any
	// bounds handling. Fixed-width fields are plain deltas; month and year
	// ticks do calendar arithmetic.
	Shift(v int64, f Field, ticks int) int64
	// GroupSpan returns the legal value span of a digit component group.
	GroupSpan(group int, fields []Field) (lo, hi int)
	// Range returns the representable window (inclusive) and whether values
	// leaving it wrap around instead of being rejected.
	Range() (lo, hi int64, wrap bool)
	// InitialSelection picks the field selected after a rebuild.
	InitialSelection(fields []Field) int
	// Parse decodes clipboard text produced by the display render path.
	Parse(text string) (int64, error)
	// Components exposes the partial-bounds component view, or nil when the
	// domain only supports fully-resolved bounds.
	Components() Components
	// RTL reports whether the display order is right-to-left.
	RTL() bool
}

// Violation names the bound the current value breaks.
type Violation struct {
	Bound   string // "min" or "max"
	Message string
}

// Editor is one segmented-value editor instance: the field sequence, the
// committed composite value, bounds, feedback state and gesture state. All
// operations are synchronous; timers are modelled as deadlines the host
// schedules (see TimerSet).
type Editor struct {
	id       uuid.UUID
	model    FieldModel
	registry *Registry
	theme    Theme

	seq      *Sequence
	value    int64
	min, max *Limit

	feedback Feedback
	timers   TimerSet
	router   Router
	swipe    Swipe

	pendingFlip bool
	pendingEdit bool
	focused     bool

	onChange  func(int64)
	onTouched func()
}

// New builds an editor around a domain model and registers it with the
// broadcast registry. The initial value is clamped into the model's range.
func New(model FieldModel, reg *Registry, initial int64) *Editor {
	e := &Editor{
		id:       uuid.New(),
		model:    model,
		registry: reg,
	}
	lo, hi, _ := model.Range()
	if initial < lo {
		initial = lo
	}
	if initial > hi {
		initial = hi
	}
	e.value = initial
	e.Rebuild()
	if reg != nil {
		reg.register(e)
	}
	return e
}

// Close unregisters the editor and releases any exclusivity it holds.
func (e *Editor) Close() {
	e.timers.Cancel(TimerRepeat)
	e.timers.Cancel(TimerFlash)
	e.timers.Cancel(TimerSwipe)
	if e.registry != nil {
		e.registry.unregister(e)
	}
}

func (e *Editor) ID() uuid.UUID     { return e.id }
func (e *Editor) Theme() Theme      { return e.theme }
func (e *Editor) Sequence() *Sequence { return e.seq }
func (e *Editor) Timers() *TimerSet { return &e.timers }
func (e *Editor) Router() *Router   { return &e.router }
func (e *Editor) Flash() (FlashLevel, string) { return e.feedback.level, e.feedback.msg }

// Rebuild reconstructs the field sequence from the model configuration,
// keeping the committed value. Bounds are supplied separately via SetLimits
// because both are replaced wholesale on reconfiguration.
func (e *Editor) Rebuild() {
	fields := e.model.BuildFields()
	e.seq = NewSequence(fields, e.model.RTL())
	e.pendingEdit = false
	e.pendingFlip = false
	e.render()
	e.seq.Select(e.model.InitialSelection(e.seq.Fields()))
}

// SetLimits replaces both bounds. Nil means unbounded on that side.
func (e *Editor) SetLimits(min, max *Limit) error {
	if min != nil && min.Side() != Low {
		return fmt.Errorf("min limit tagged %v", min.Side())
	}
	if max != nil && max.Side() != High {
		return fmt.Errorf("max limit tagged %v", max.Side())
	}
	e.min, e.max = min, max
	return nil
}

func (e *Editor) Value() int64 { return e.value }

// SetValue replaces the committed value, clamping to bounds with a warning
// when needed. The change notification fires once per distinct settled
// value and never from preview-only computation.
func (e *Editor) SetValue(v int64, now time.Time) {
	e.resolveEdit(now)
	e.pendingFlip = false
	clamped := e.clampToLimits(v)
	if clamped != v {
		e.feedback.Signal(FlashWarning, "value adjusted to bounds", &e.timers, now)
	}
	e.commit(clamped)
}

func (e *Editor) OnChange(fn func(int64))  { e.onChange = fn }
func (e *Editor) OnTouched(fn func())      { e.onTouched = fn }

// Focus marks the editor active for input.
func (e *Editor) Focus() {
	e.focused = true
	if e.seq.Selected() == NoSelection {
		e.seq.Select(e.model.InitialSelection(e.seq.Fields()))
	}
}

// Blur resolves any dangling mid-edit state and fires the touched
// notification once.
func (e *Editor) Blur(now time.Time) {
	if !e.focused {
		return
	}
	e.focused = false
	e.resolveEdit(now)
	e.timers.Cancel(TimerRepeat)
	e.router.ReleaseAll()
	if e.onTouched != nil {
		e.onTouched()
	}
}

func (e *Editor) Focused() bool { return e.focused }

// MoveCursor moves the selection, resolving a pending mid-edit state first
// since leaving the field settles the edit.
func (e *Editor) MoveCursor(dir int, now time.Time) int {
	e.resolveEdit(now)
	return e.seq.MoveCursor(dir)
}

// Validate returns nil while the committed value sits inside both bounds.
func (e *Editor) Validate() *Violation {
	if e.min.violates(e.value) {
		return &Violation{Bound: "min", Message: "value below minimum"}
	}
	if e.max.violates(e.value) {
		return &Violation{Bound: "max", Message: "value above maximum"}
	}
	return nil
}

// Copy serializes the committed value through the display render path:
// visible field text in logical order. Preview-only values never appear.
func (e *Editor) Copy() string {
	var b strings.Builder
	for _, f := range e.seq.Fields() {
		if f.Hidden {
			continue
		}
		b.WriteString(f.Text)
	}
	return b.String()
}

// Paste parses clipboard text through the model's decode path. Parse
// failure flashes an error and leaves the value untouched; an out-of-bounds
// result is clamped with a warning before committing.
func (e *Editor) Paste(text string, now time.Time) bool {
	v, err := e.model.Parse(text)
	if err != nil {
		e.feedback.Signal(FlashError, "unparsable paste", &e.timers, now)
		return false
	}
	e.resolveEdit(now)
	e.pendingFlip = false
	clamped := e.clampToLimits(v)
	if clamped != v {
		e.feedback.Signal(FlashWarning, "pasted value clamped to bounds", &e.timers, now)
	} else {
		e.feedback.Signal(FlashConfirm, "pasted", &e.timers, now)
	}
	e.commit(clamped)
	return true
}

// HandleTimer dispatches a fired deadline back into the engine. Stale
// tokens (superseded or cancelled timers) are ignored.
func (e *Editor) HandleTimer(cat TimerCat, token uint64, now time.Time) {
	if !e.timers.Fire(cat, token) {
		return
	}
	switch cat {
	case TimerRepeat:
		e.repeatFire(now)
	case TimerFlash:
		e.feedback.Expire()
	case TimerSwipe:
		e.swipeSampleTick(now)
	}
}

func (e *Editor) applyTheme(th Theme) { e.theme = th }

// clampToLimits pulls v inside the model range and [min, max].
func (e *Editor) clampToLimits(v int64) int64 {
	lo, hi, _ := e.model.Range()
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	if e.min != nil {
		v = e.min.Clamp(v)
	}
	if e.max != nil {
		v = e.max.Clamp(v)
	}
	return v
}

// commit installs a settled value, re-renders the fields and notifies once
// when the value actually changed.
func (e *Editor) commit(v int64) {
	changed := v != e.value || e.pendingEdit
	e.value = v
	e.pendingEdit = false
	e.render()
	if changed && e.onChange != nil {
		e.onChange(v)
	}
}

// ValueObserver is implemented by models that keep state derived from the
// committed value, such as the two-digit-year century anchor. The editor
// notifies it on the committed render path only; Decode itself must stay
// free of side effects so gesture previews can decode candidate values
// through the same model without disturbing committed state.
type ValueObserver interface {
	ObserveValue(v int64)
}

// render refreshes field contents from the committed value. Mid-edit text
// is left alone so partially-typed digits are not clobbered.
func (e *Editor) render() {
	if e.pendingEdit {
		return
	}
	if o, ok := e.model.(ValueObserver); ok {
		o.ObserveValue(e.value)
	}
	e.model.Decode(e.value, e.seq.Fields())
	if e.pendingFlip {
		for i := range e.seq.Fields() {
			f := e.seq.Field(i)
			if f.Kind == KindSign {
				f.TokenIdx = 1 - f.TokenIdx
				f.Text = f.Tokens[f.TokenIdx]
			}
		}
	}
	e.seq.RecomputeDisplay()
}

// resolveEdit settles a calendar-invalid mid-edit state by clamping the
// typed fields to the nearest valid value, with a warning.
func (e *Editor) resolveEdit(now time.Time) {
	if !e.pendingEdit {
		return
	}
	v := e.model.Normalize(e.seq.Fields())
	v = e.clampToLimits(v)
	e.feedback.Signal(FlashWarning, "adjusted to nearest valid value", &e.timers, now)
	e.commit(v)
}
