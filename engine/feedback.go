package engine

import "time"

// FlashLevel is the transient visual feedback state of an editor. Exactly
// one state is active at a time; levels are strictly prioritized.
type FlashLevel int

const (
	FlashNormal FlashLevel = iota
	FlashConfirm
	FlashWarning
	FlashError
)

// flashDuration is how long a non-normal flash state stays up.
const flashDuration = 900 * time.Millisecond

// Feedback is the flash-state machine: a signal at or above the active
// level replaces it and restarts the single flash timer; a lower-priority
// signal is dropped while the current one plays out.
type Feedback struct {
	level FlashLevel
	msg   string
}

func (f *Feedback) Level() FlashLevel { return f.level }
func (f *Feedback) Message() string   { return f.msg }

// Signal requests a flash. Returns whether the state actually changed.
func (f *Feedback) Signal(level FlashLevel, msg string, timers *TimerSet, now time.Time) bool {
	if level == FlashNormal {
		f.Expire()
		timers.Cancel(TimerFlash)
		return true
	}
	if f.level > level {
		return false
	}
	f.level = level
	f.msg = msg
	timers.Start(TimerFlash, now.Add(flashDuration))
	return true
}

// Expire drops back to the normal state.
func (f *Feedback) Expire() {
	f.level = FlashNormal
	f.msg = ""
}
