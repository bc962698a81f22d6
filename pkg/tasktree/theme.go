package tasktree

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the marker and status glyphs as pre-rendered strings, so the
// animator does no styling work per tick.
// Immutable
type Theme struct {
	Marker string // shown next to a task that is still unresolved
	Pass   string
	Warn   string
	Fail   string
	Frames [4]string // spinner rotation, one frame per tick
}

// DefaultTheme returns the colored theme using lipgloss: yellow-bold marker
// and spinner, green check, yellow triangle, red cross.
func DefaultTheme() Theme {
	spin := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	return Theme{
		Marker: spin.Render("-"),
		Pass:   green.Render("✔"),
		Warn:   spin.Render("▲"),
		Fail:   red.Render("✘"),
		Frames: [4]string{
			spin.Render("-"),
			spin.Render(`\`),
			spin.Render("|"),
			spin.Render("/"),
		},
	}
}

// PlainTheme returns the same glyphs without styling, for tests and writers
// that are not color terminals.
func PlainTheme() Theme {
	return Theme{
		Marker: "-",
		Pass:   "✔",
		Warn:   "▲",
		Fail:   "✘",
		Frames: [4]string{"-", `\`, "|", "/"},
	}
}
