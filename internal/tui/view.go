package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/segedit/engine"
)

func (a *App) View() string {
	var blocks []string
	for i, slot := range a.slots {
		blocks = append(blocks, a.renderSlot(slot, i == a.focus))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	footer := a.renderFooter()
	if a.pasting {
		footer = a.styles.Title.Render("paste: ") + a.pasteBuffer + a.styles.Footer.Render("  (enter to apply, esc to cancel)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, footer)
}

func (a *App) renderSlot(slot editorSlot, hot bool) string {
	ed := slot.editor
	frame := a.styles.Frame
	if hot {
		frame = a.styles.FrameHot
	}
	lines := []string{a.styles.Title.Render(slot.label)}
	if up := a.previewLine(ed, ed.PreviewUp); up != "" {
		lines = append(lines, up)
	}
	lines = append(lines, a.fieldLine(ed, hot))
	if down := a.previewLine(ed, ed.PreviewDown); down != "" {
		lines = append(lines, down)
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// fieldLine renders the committed fields in display order, highlighting the
// selection on the focused editor.
func (a *App) fieldLine(ed *engine.Editor, hot bool) string {
	var b strings.Builder
	sel := ed.Sequence().Selected()
	for _, i := range ed.Sequence().DisplayOrder() {
		f := ed.Sequence().Field(i)
		style := a.styles.Field
		switch {
		case hot && i == sel:
			style = a.styles.Selected
		case f.Kind == engine.KindSeparator || f.Kind == engine.KindIndicator:
			style = a.styles.Separator
		case f.Kind == engine.KindToken || f.Kind == engine.KindSign:
			style = a.styles.Token
		}
		b.WriteString(style.Render(f.Text))
	}
	return b.String()
}

// previewLine renders one gesture preview row: predicted texts where they
// differ from the committed rendering, blanks under unchanged fields.
func (a *App) previewLine(ed *engine.Editor, preview func(int) (string, bool)) string {
	any := false
	var b strings.Builder
	for _, i := range ed.Sequence().DisplayOrder() {
		f := ed.Sequence().Field(i)
		if t, ok := preview(i); ok {
			b.WriteString(a.styles.Preview.Render(t))
			any = true
		} else {
			b.WriteString(strings.Repeat(" ", lipgloss.Width(f.Text)))
		}
	}
	if !any {
		return ""
	}
	return b.String()
}

func (a *App) renderFooter() string {
	level, msg := a.focused().Flash()
	flash := ""
	switch level {
	case engine.FlashConfirm:
		flash = a.styles.FlashOK.Render(msg)
	case engine.FlashWarning:
		flash = a.styles.FlashWarn.Render(msg)
	case engine.FlashError:
		flash = a.styles.FlashErr.Render(msg)
	}
	help := a.helpLine()
	if a.status != "" && flash == "" {
		flash = a.styles.Footer.Render(a.status)
	}
	if flash == "" {
		return help
	}
	return flash + "\n" + help
}

// helpLine joins the engine's editing hints with the host bindings from the
// key registry, so rebinding a key updates the footer too.
func (a *App) helpLine() string {
	parts := []string{"←/→ field", "↑/↓ roll", "0-9 type", "ctrl+y copy", "ctrl+p paste"}
	for _, b := range a.keys.HelpBindings(scopeGlobal) {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return a.styles.Footer.Render(strings.Join(parts, " · "))
}
