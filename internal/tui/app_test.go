package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/segedit/engine"
	"github.com/jask/segedit/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		UI:     config.UIConfig{Theme: "dark"},
		Time:   config.TimeConfig{DateOrder: "ymd", HourStyle: "24", ShowSeconds: true},
		Angle:  config.AngleConfig{Notation: "degminsec", Compass: "ns"},
		Repeat: config.RepeatConfig{DelayMs: 400, IntervalMs: 80},
	}
}

func TestNew_BuildsEditorBank(t *testing.T) {
	t.Parallel()
	a, err := New(testConfig())
	require.NoError(t, err)
	require.Len(t, a.slots, 3)
	require.True(t, a.focused().Focused())
	require.NotEmpty(t, a.View())
}

func TestNew_RejectsMalformedBound(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Time.Max = "2026-13"
	_, err := New(cfg)
	require.Error(t, err)
}

func TestUpdate_TabCyclesFocus(t *testing.T) {
	t.Parallel()
	a, err := New(testConfig())
	require.NoError(t, err)
	first := a.focused()
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotSame(t, first, a.focused())
	require.False(t, first.Focused())
	require.True(t, a.focused().Focused())
}

func TestUpdate_RollSchedulesRepeatTick(t *testing.T) {
	t.Parallel()
	a, err := New(testConfig())
	require.NoError(t, err)
	before := a.focused().Value()
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.NotEqual(t, before, a.focused().Value())
	require.NotNil(t, cmd, "an armed repeat deadline needs a tick command")

	// The same armed deadline is not scheduled twice.
	require.Nil(t, a.scheduleTimers())
}

func TestUpdate_CopyThenPasteAcrossEditors(t *testing.T) {
	t.Parallel()
	a, err := New(testConfig())
	require.NoError(t, err)
	a.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotEmpty(t, a.clipboard)

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	require.True(t, a.pasting)
	require.Equal(t, a.clipboard, a.pasteBuffer)
	require.Same(t, a.focused(), a.registry.PastePromptHolder())

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, a.pasting)
	require.Nil(t, a.registry.PastePromptHolder())
}

func TestFooterHelpComesFromKeyRegistry(t *testing.T) {
	t.Parallel()
	a, err := New(testConfig())
	require.NoError(t, err)

	bindings := a.keys.HelpBindings(scopeGlobal)
	require.Len(t, bindings, 4)
	help := a.helpLine()
	for _, b := range bindings {
		h := b.Help()
		require.NotEmpty(t, h.Key)
		require.Contains(t, help, h.Key+" "+h.Desc)
	}
	require.Contains(t, a.View(), "q quit")
}

func TestToggleThemeBroadcasts(t *testing.T) {
	t.Setenv("SEGEDIT_CONFIG", t.TempDir()+"/config.toml")
	a, err := New(testConfig())
	require.NoError(t, err)
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	for _, s := range a.slots {
		require.Equal(t, engine.ThemeLight, s.editor.Theme())
	}
}
