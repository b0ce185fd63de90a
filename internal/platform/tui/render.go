package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/colorx/internal/color"
)

// Shared styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(9)
	valueStyle = lipgloss.NewStyle().
			Bold(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Italic(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// lightnessThreshold is the CIE L* above which black label text is used.
const lightnessThreshold = 0.6

// LabelColor returns black or white, whichever reads better on c.
// Alpha is ignored since the terminal cannot blend.
func LabelColor(c color.Color) lipgloss.Color {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	l, _, _ := cf.Lab()
	if l > lightnessThreshold {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// backgroundHex returns the opaque "#rrggbb" form used as a terminal color.
func backgroundHex(c color.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RenderSwatch draws a filled block of c with its hex value centered.
func RenderSwatch(c color.Color, width, height int) string {
	if width < 12 {
		width = 12
	}
	if height < 1 {
		height = 1
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(backgroundHex(c))).
		Foreground(LabelColor(c)).
		Width(width).
		Align(lipgloss.Center)

	lines := make([]string, height)
	for i := range lines {
		lines[i] = style.Render("")
	}
	lines[height/2] = style.Render(color.FormatHex(c))
	return strings.Join(lines, "\n")
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
