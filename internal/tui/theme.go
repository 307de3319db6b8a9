package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/segedit/engine"
)

// ---------------------------------------------------------------------------
// Catppuccin palettes — Mocha for the dark variant, Latte for light.
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

// Palette carries the colors the editor views draw with.
type Palette struct {
	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Surface  lipgloss.Color
	Base     lipgloss.Color
	Accent   lipgloss.Color
	Focus    lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Info     lipgloss.Color
	Preview  lipgloss.Color
	Disabled lipgloss.Color
}

func mocha() Palette {
	return Palette{
		Text:     "#cdd6f4",
		Subtext:  "#a6adc8",
		Surface:  "#313244",
		Base:     "#1e1e2e",
		Accent:   "#f5c2e7",
		Focus:    "#b4befe",
		Success:  "#a6e3a1",
		Error:    "#f38ba8",
		Warning:  "#f9e2af",
		Info:     "#94e2d5",
		Preview:  "#9399b2",
		Disabled: "#6c7086",
	}
}

func latte() Palette {
	return Palette{
		Text:     "#4c4f69",
		Subtext:  "#6c6f85",
		Surface:  "#ccd0da",
		Base:     "#eff1f5",
		Accent:   "#ea76cb",
		Focus:    "#7287fd",
		Success:  "#40a02b",
		Error:    "#d20f39",
		Warning:  "#df8e1d",
		Info:     "#179299",
		Preview:  "#9ca0b0",
		Disabled: "#acb0be",
	}
}

// PaletteFor maps the broadcast theme variant onto a palette.
func PaletteFor(th engine.Theme) Palette {
	if th == engine.ThemeLight {
		return latte()
	}
	return mocha()
}

// Styles are the derived lipgloss styles, rebuilt on every theme broadcast.
type Styles struct {
	Field     lipgloss.Style
	Selected  lipgloss.Style
	Separator lipgloss.Style
	Token     lipgloss.Style
	Preview   lipgloss.Style
	Title     lipgloss.Style
	Footer    lipgloss.Style
	FlashOK   lipgloss.Style
	FlashWarn lipgloss.Style
	FlashErr  lipgloss.Style
	Frame     lipgloss.Style
	FrameHot  lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Field:     lipgloss.NewStyle().Foreground(p.Text),
		Selected:  lipgloss.NewStyle().Foreground(p.Base).Background(p.Accent).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(p.Subtext),
		Token:     lipgloss.NewStyle().Foreground(p.Info),
		Preview:   lipgloss.NewStyle().Foreground(p.Preview).Italic(true),
		Title:     lipgloss.NewStyle().Foreground(p.Focus).Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(p.Subtext),
		FlashOK:   lipgloss.NewStyle().Foreground(p.Success),
		FlashWarn: lipgloss.NewStyle().Foreground(p.Warning),
		FlashErr:  lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Disabled).Padding(0, 1),
		FrameHot:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Focus).Padding(0, 1),
	}
}
