package engine

import (
	"testing"
	"time"
)

func TestTimerReplaceNotStack(t *testing.T) {
	var ts TimerSet
	now := time.Now()
	first := ts.Start(TimerFlash, now.Add(time.Second))
	second := ts.Start(TimerFlash, now.Add(2*time.Second))
	if ts.Fire(TimerFlash, first) {
		t.Fatal("stale token fired")
	}
	if !ts.Fire(TimerFlash, second) {
		t.Fatal("current token refused")
	}
	if ts.Fire(TimerFlash, second) {
		t.Fatal("token fired twice")
	}
}

func TestTimerCancelIdempotent(t *testing.T) {
	var ts TimerSet
	ts.Cancel(TimerRepeat)
	ts.Cancel(TimerRepeat)
	tok := ts.Start(TimerRepeat, time.Now())
	ts.Cancel(TimerRepeat)
	ts.Cancel(TimerRepeat)
	if ts.Fire(TimerRepeat, tok) {
		t.Fatal("cancelled token fired")
	}
}

func TestTimerCategoriesIndependent(t *testing.T) {
	var ts TimerSet
	now := time.Now()
	rep := ts.Start(TimerRepeat, now)
	fl := ts.Start(TimerFlash, now)
	ts.Cancel(TimerRepeat)
	if ts.Fire(TimerRepeat, rep) {
		t.Fatal("cancelled repeat fired")
	}
	if !ts.Fire(TimerFlash, fl) {
		t.Fatal("flash should be unaffected by repeat cancel")
	}
}

func TestTimerDeadline(t *testing.T) {
	var ts TimerSet
	if _, _, ok := ts.Deadline(TimerSwipe); ok {
		t.Fatal("idle category reports a deadline")
	}
	at := time.Now().Add(50 * time.Millisecond)
	tok := ts.Start(TimerSwipe, at)
	got, gotTok, ok := ts.Deadline(TimerSwipe)
	if !ok || !got.Equal(at) || gotTok != tok {
		t.Fatalf("deadline = %v/%d/%v, want %v/%d/true", got, gotTok, ok, at, tok)
	}
}

func TestFlashPriority(t *testing.T) {
	var ts TimerSet
	var f Feedback
	now := time.Now()
	if !f.Signal(FlashWarning, "w", &ts, now) {
		t.Fatal("warning refused on normal state")
	}
	if f.Signal(FlashConfirm, "c", &ts, now) {
		t.Fatal("confirm should not preempt warning")
	}
	if f.Level() != FlashWarning {
		t.Fatalf("level = %v, want warning", f.Level())
	}
	if !f.Signal(FlashError, "e", &ts, now) {
		t.Fatal("error should preempt warning")
	}
	f.Expire()
	if f.Level() != FlashNormal || f.Message() != "" {
		t.Fatalf("after expire: %v %q", f.Level(), f.Message())
	}
}

func TestFlashRestartsSingleTimer(t *testing.T) {
	var ts TimerSet
	var f Feedback
	now := time.Now()
	f.Signal(FlashWarning, "w", &ts, now)
	_, tok1, _ := ts.Deadline(TimerFlash)
	f.Signal(FlashError, "e", &ts, now.Add(100*time.Millisecond))
	_, tok2, ok := ts.Deadline(TimerFlash)
	if !ok || tok2 == tok1 {
		t.Fatal("second signal must replace the flash timer, not stack one")
	}
	if ts.Fire(TimerFlash, tok1) {
		t.Fatal("stale flash timer fired")
	}
}
