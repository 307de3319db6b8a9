package engine

import "time"

// Key is a logical editing key after classification. How events reach the
// engine is the host's business; the router only interprets them.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyDigit
	KeyCopy
	KeyPaste
)

// Input is one classified actuation. Phys identifies the physical key so
// auto-repeat can tell "same key still held" from a distinct key.
type Input struct {
	Key   Key
	Digit int
	Phys  string
}

const (
	defaultRepeatDelay    = 400 * time.Millisecond
	defaultRepeatInterval = 80 * time.Millisecond
)

// Router holds the auto-repeat state. Only one repeat may be pending; a
// distinct key cancels it outright before its own action runs.
type Router struct {
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
	held           Input
	hasHeld        bool
}

func (r *Router) delay() time.Duration {
	if r.RepeatDelay > 0 {
		return r.RepeatDelay
	}
	return defaultRepeatDelay
}

func (r *Router) interval() time.Duration {
	if r.RepeatInterval > 0 {
		return r.RepeatInterval
	}
	return defaultRepeatInterval
}

// ReleaseAll drops the held-key state (focus loss, gesture grab).
func (r *Router) ReleaseAll() { r.hasHeld = false }

// Classify maps a key name (bubbletea-style) to a logical input. Anything
// unrecognized — modifiers, function keys — comes back KeyNone and is
// ignored upstream.
func Classify(name string) Input {
	switch name {
	case "left", "h":
		return Input{Key: KeyLeft, Phys: name}
	case "right", "l":
		return Input{Key: KeyRight, Phys: name}
	case "up", "k", "+":
		return Input{Key: KeyUp, Phys: name}
	case "down", "j", "-":
		return Input{Key: KeyDown, Phys: name}
	case "ctrl+y":
		return Input{Key: KeyCopy, Phys: name}
	case "ctrl+p":
		return Input{Key: KeyPaste, Phys: name}
	}
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Input{Key: KeyDigit, Digit: int(name[0] - '0'), Phys: name}
	}
	return Input{Key: KeyNone, Phys: name}
}

// PressResult tells the host what a key press produced beyond internal
// state changes: serialized clipboard text on copy, or a request for
// clipboard contents on paste.
type PressResult struct {
	Handled   bool
	Copied    string
	WantPaste bool
}

// Press runs one actuation: cancel a pending repeat if this is a distinct
// key, execute the action immediately, then arm the repeat timer for
// repeatable actions.
func (e *Editor) Press(in Input, now time.Time) PressResult {
	if in.Key == KeyNone {
		return PressResult{}
	}
	if e.router.hasHeld && e.router.held.Phys != in.Phys {
		e.router.hasHeld = false
		e.timers.Cancel(TimerRepeat)
	}
	res := e.perform(in, now)
	if repeatable(in.Key) {
		e.router.held = in
		e.router.hasHeld = true
		e.timers.Start(TimerRepeat, now.Add(e.router.delay()))
	}
	return res
}

// Release ends a hold. Unmatched releases are ignored.
func (e *Editor) Release(phys string) {
	if e.router.hasHeld && e.router.held.Phys == phys {
		e.router.hasHeld = false
		e.timers.Cancel(TimerRepeat)
	}
}

// repeatFire re-executes the held action at the fixed rate.
func (e *Editor) repeatFire(now time.Time) {
	if !e.router.hasHeld {
		return
	}
	e.perform(e.router.held, now)
	e.timers.Start(TimerRepeat, now.Add(e.router.interval()))
}

func (e *Editor) perform(in Input, now time.Time) PressResult {
	switch in.Key {
	case KeyLeft:
		e.MoveCursor(-1, now)
	case KeyRight:
		e.MoveCursor(1, now)
	case KeyUp:
		e.Roll(1, now)
	case KeyDown:
		e.Roll(-1, now)
	case KeyDigit:
		e.TypeDigit(in.Digit, now)
	case KeyCopy:
		return PressResult{Handled: true, Copied: e.Copy()}
	case KeyPaste:
		if e.registry != nil {
			e.registry.AcquirePastePrompt(e)
		}
		return PressResult{Handled: true, WantPaste: true}
	default:
		return PressResult{}
	}
	return PressResult{Handled: true}
}

func repeatable(k Key) bool {
	switch k {
	case KeyLeft, KeyRight, KeyUp, KeyDown:
		return true
	}
	return false
}
