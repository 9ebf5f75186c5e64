package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mrbonezy/goback/ui"
)

var (
	mainGreen   = lipgloss.Color("#3D8361")
	accentGreen = lipgloss.Color("#5DA381")
	borderGray  = lipgloss.Color("#646464")
)

type palette struct {
	accent lipgloss.Style
	border lipgloss.Style
	spin   lipgloss.Style
}

// newPalette binds styles to r so color output follows the capabilities of
// the writer r was created for.
func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		accent: r.NewStyle().Foreground(accentGreen),
		border: r.NewStyle().Foreground(borderGray),
		spin:   r.NewStyle().Foreground(mainGreen),
	}
}

func (p palette) accentText(s string) string { return p.accent.Render(s) }

func (p palette) borderText(s string) string { return p.border.Render(s) }

func (p palette) tableStyles() ui.TableStyles {
	return ui.TableStyles{Border: p.borderText}
}
