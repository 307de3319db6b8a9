package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/segedit/angleval"
	"github.com/jask/segedit/engine"
	"github.com/jask/segedit/internal/config"
	"github.com/jask/segedit/timeval"
)

// One terminal row of pointer travel counts as this many gesture pixels.
const rowPx = 8.0

// fieldHeightPx is the nominal on-screen height of one field for gesture
// thresholds.
const fieldHeightPx = 24.0

type editorSlot struct {
	label  string
	editor *engine.Editor
}

// App hosts a bank of editors over one shared registry: focus cycling, a
// shared clipboard, the paste prompt and theme switching all live here. The
// editors themselves stay host-agnostic.
type App struct {
	cfg      config.Config
	registry *engine.Registry
	keys     *KeyRegistry
	styles   Styles
	slots    []editorSlot
	focus    int

	clipboard   string
	pasteBuffer string
	pasting     bool

	// deadline -> scheduled token, so each armed timer gets exactly one tick
	scheduled map[schedKey]uint64

	mouseDown bool
	mouseY    int

	width  int
	status string
}

type schedKey struct {
	id  uuid.UUID
	cat engine.TimerCat
}

// timerMsg carries one fired engine deadline back into Update. Stale tokens
// are dropped by the editor itself.
type timerMsg struct {
	id    uuid.UUID
	cat   engine.TimerCat
	token uint64
	at    time.Time
}

// New builds the demo editor bank from configuration: a full timestamp
// editor, a clock-only editor and an angle editor.
func New(cfg config.Config) (*App, error) {
	reg := engine.NewRegistry()
	if cfg.UI.Theme == "light" {
		reg.SetTheme(engine.ThemeLight)
	}

	tmOpts := timeval.Options{
		DateOrder:   dateOrder(cfg.Time.DateOrder),
		HourStyle:   hourStyle(cfg.Time.HourStyle),
		ShowSeconds: cfg.Time.ShowSeconds,
		RTL:         cfg.UI.RTL,
	}
	tm := timeval.New(tmOpts)
	now := time.Now().UTC()
	tmEd := engine.New(tm, reg, now.UnixMilli())
	min, err := tm.Bound(engine.Low, cfg.Time.Min)
	if err != nil {
		return nil, err
	}
	max, err := tm.Bound(engine.High, cfg.Time.Max)
	if err != nil {
		return nil, err
	}
	if err := tmEd.SetLimits(min, max); err != nil {
		return nil, err
	}
	applyRepeat(tmEd, cfg.Repeat)

	clock := timeval.New(timeval.Options{Style: timeval.TimeOnly, ShowSeconds: true, RTL: cfg.UI.RTL})
	clockEd := engine.New(clock, reg, int64(now.Hour()*3600000+now.Minute()*60000+now.Second()*1000))
	applyRepeat(clockEd, cfg.Repeat)

	ang := angleval.New(angleval.Options{
		Style:      notation(cfg.Angle.Notation),
		Compass:    compass(cfg.Angle.Compass),
		WrapAround: cfg.Angle.WrapAround,
		RTL:        cfg.UI.RTL,
	})
	angEd := engine.New(ang, reg, angleval.Units(-45.5))
	applyRepeat(angEd, cfg.Repeat)

	a := &App{
		cfg:      cfg,
		registry: reg,
		keys:     NewKeyRegistry(),
		styles:   NewStyles(PaletteFor(reg.Theme())),
		slots: []editorSlot{
			{label: "Timestamp", editor: tmEd},
			{label: "Clock", editor: clockEd},
			{label: "Bearing", editor: angEd},
		},
		scheduled: map[schedKey]uint64{},
	}
	a.focused().Focus()
	return a, nil
}

func applyRepeat(e *engine.Editor, rc config.RepeatConfig) {
	r := e.Router()
	r.RepeatDelay = time.Duration(rc.DelayMs) * time.Millisecond
	r.RepeatInterval = time.Duration(rc.IntervalMs) * time.Millisecond
}

func dateOrder(s string) timeval.DateOrder {
	switch s {
	case "dmy":
		return timeval.DMY
	case "mdy":
		return timeval.MDY
	}
	return timeval.YMD
}

func hourStyle(s string) timeval.HourStyle {
	if s == "12" {
		return timeval.Hour12
	}
	return timeval.Hour24
}

func notation(s string) angleval.Style {
	switch s {
	case "decimal":
		return angleval.Decimal
	case "degmin":
		return angleval.DegMin
	}
	return angleval.DegMinSec
}

func compass(s string) angleval.Compass {
	switch s {
	case "ns":
		return angleval.CompassNS
	case "ew":
		return angleval.CompassEW
	}
	return angleval.CompassNone
}

func (a *App) focused() *engine.Editor { return a.slots[a.focus].editor }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil
	case tea.KeyMsg:
		return a.updateKey(msg)
	case tea.MouseMsg:
		return a.updateMouse(msg)
	case timerMsg:
		ed := a.editorByID(msg.id)
		if ed != nil {
			delete(a.scheduled, schedKey{id: msg.id, cat: msg.cat})
			ed.HandleTimer(msg.cat, msg.token, msg.at)
		}
		return a, a.scheduleTimers()
	}
	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := msg.String()
	now := time.Now()

	if a.pasting {
		switch a.keys.Lookup(scopePaste, name) {
		case actionConfirm:
			a.focused().Paste(a.pasteBuffer, now)
			a.closePastePrompt()
		case actionCancel:
			a.closePastePrompt()
		default:
			switch {
			case name == "backspace" && len(a.pasteBuffer) > 0:
				a.pasteBuffer = a.pasteBuffer[:len(a.pasteBuffer)-1]
			case len(msg.Runes) > 0:
				a.pasteBuffer += string(msg.Runes)
			}
		}
		return a, a.scheduleTimers()
	}

	switch a.keys.Lookup(scopeGlobal, name) {
	case actionQuit:
		return a, tea.Quit
	case actionNextEditor:
		a.cycleFocus(1, now)
		return a, a.scheduleTimers()
	case actionPrevEditor:
		a.cycleFocus(-1, now)
		return a, a.scheduleTimers()
	case actionToggleTheme:
		a.toggleTheme()
		return a, nil
	}

	res := a.focused().Press(engine.Classify(name), now)
	if res.Copied != "" {
		a.clipboard = res.Copied
		a.status = "copied"
	}
	if res.WantPaste {
		a.pasting = true
		a.pasteBuffer = a.clipboard
	}
	return a, a.scheduleTimers()
}

func (a *App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		a.mouseDown = true
		a.mouseY = msg.Y
		a.registry.AcquireHeaderDrag(a.focused())
		a.focused().SwipeStart(fieldHeightPx, now)
	case tea.MouseActionMotion:
		if !a.mouseDown {
			return a, nil
		}
		// Upward pointer travel reads as an upward roll.
		delta := float64(a.mouseY-msg.Y) * rowPx
		a.mouseY = msg.Y
		a.focused().SwipeMove(delta, now)
	case tea.MouseActionRelease:
		if !a.mouseDown {
			return a, nil
		}
		a.mouseDown = false
		a.focused().SwipeEnd(now)
		a.registry.ReleaseHeaderDrag(a.focused())
	}
	return a, a.scheduleTimers()
}

func (a *App) cycleFocus(dir int, now time.Time) {
	a.focused().Blur(now)
	a.focus = (a.focus + dir + len(a.slots)) % len(a.slots)
	a.focused().Focus()
}

func (a *App) toggleTheme() {
	next := engine.ThemeLight
	if a.registry.Theme() == engine.ThemeLight {
		next = engine.ThemeDark
	}
	a.registry.SetTheme(next)
	a.styles = NewStyles(PaletteFor(next))
	a.cfg.UI.Theme = string(next)
	_ = config.Save(a.cfg)
}

func (a *App) closePastePrompt() {
	a.pasting = false
	a.pasteBuffer = ""
	a.registry.ReleasePastePrompt(a.focused())
}

func (a *App) editorByID(id uuid.UUID) *engine.Editor {
	for _, s := range a.slots {
		if s.editor.ID() == id {
			return s.editor
		}
	}
	return nil
}

// scheduleTimers emits one tick command per newly armed engine deadline.
// Superseded deadlines still tick but carry stale tokens the editor ignores.
func (a *App) scheduleTimers() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range a.slots {
		ed := s.editor
		for _, cat := range []engine.TimerCat{engine.TimerRepeat, engine.TimerFlash, engine.TimerSwipe} {
			at, token, ok := ed.Timers().Deadline(cat)
			if !ok {
				continue
			}
			k := schedKey{id: ed.ID(), cat: cat}
			if a.scheduled[k] == token {
				continue
			}
			a.scheduled[k] = token
			id, c, tok := ed.ID(), cat, token
			cmds = append(cmds, tea.Tick(time.Until(at), func(time.Time) tea.Msg {
				return timerMsg{id: id, cat: c, token: tok, at: at}
			}))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
