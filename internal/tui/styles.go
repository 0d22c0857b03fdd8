package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90D9")).
			Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4A90D9")).
			Padding(1, 2).
			Width(panelWidth)

	cityStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2C3E50"))
	tempStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E67E22"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F39C12"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6"))

	triggerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#27AE60")).
			Padding(0, 1)
	triggerDisabledStyle = triggerStyle.
				Background(lipgloss.Color("#95A5A6"))
)

const panelWidth = 48

// iconGlyphs maps the numeric part of an icon code to a terminal glyph.
var iconGlyphs = map[string]string{
	"01": "☀",
	"02": "⛅",
	"03": "☁",
	"04": "☁",
	"09": "🌧",
	"10": "🌦",
	"11": "⛈",
	"13": "❄",
	"50": "🌫",
}

func iconGlyph(code string) string {
	if code == "01n" {
		return "☾"
	}
	if len(code) < 2 {
		return ""
	}
	return iconGlyphs[code[:2]]
}
