package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/weatherframe/internal/logtail"
)

const logTailLimit = 400

// loadLogs re-reads the tail of the dashboard's own log file into the
// overlay viewport. Called when the overlay opens and on every clock tick
// while it stays open.
func (m *Model) loadLogs() {
	if m.logPath == "" {
		m.logViewport.SetContent("")
		return
	}
	lines, err := logtail.Read(m.logPath, logTailLimit)
	if err != nil {
		m.logViewport.SetContent(m.theme.Styles().MutedText.Render(err.Error()))
		return
	}

	follow := m.logViewport.AtBottom()
	m.logViewport.SetContent(m.colorizeLogLines(lines))
	if follow {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) colorizeLogLines(lines []string) string {
	styles := m.theme.Styles()
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	danger := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Danger)).Bold(true)

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		level, ok := logtail.LevelOf(line)
		switch {
		case !ok:
			b.WriteString(styles.FaintText.Render(line))
		case level >= slog.LevelError:
			b.WriteString(danger.Render(line))
		case level >= slog.LevelWarn:
			b.WriteString(warn.Render(line))
		case level < slog.LevelInfo:
			b.WriteString(styles.FaintText.Render(line))
		default:
			b.WriteString(styles.Text.Render(line))
		}
	}
	return b.String()
}

func (m *Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("Log") +
		styles.FaintText.Render("  "+m.logPath)

	frame := styles.Overlay.
		Padding(0, 1).
		Width(max(m.width-2, 10)).
		Render(title + "\n" + m.logViewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, frame, m.renderFooter(styles))
}
