package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/weatherframe/internal/openweather"
)

// renderHelp renders the help overlay.
func (m *Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	h := m.help
	h.ShowAll = true
	b.WriteString(h.View(m.keys))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Theme: " + m.theme.Name))
	b.WriteString("\n")
	if m.hasCurrent && m.current.Condition.Icon != "" {
		b.WriteString(styles.MutedText.Render("Icon: " + openweather.IconURL(m.current.Condition.Icon, "2x")))
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("Weather data: OpenWeather"))

	modal := styles.Overlay.Width(min(m.width-4, 72)).Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
