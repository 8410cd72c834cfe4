package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/weatherframe/internal/weather"
)

const forecastColumnWidth = 11

// renderDashboard renders the clock, current conditions and forecast. A
// failed refresh changes nothing here; the last good snapshot stays up.
func (m *Model) renderDashboard() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.MutedText.Render(m.locale.FormatDate(m.clock)))
	b.WriteString("\n")
	b.WriteString(styles.Clock.Render(m.locale.FormatClock(m.clock)))
	b.WriteString("\n\n")

	if m.hasCurrent {
		b.WriteString(m.renderCurrent(styles))
		if len(m.forecast) > 0 {
			b.WriteString("\n\n")
			b.WriteString(m.renderForecast(styles))
		}
	} else {
		b.WriteString(styles.MutedText.Render(m.spinner.View() + " " + m.locale.LoadingText()))
	}

	body := styles.Frame.
		Width(m.width).
		Height(max(m.height-1, 1)).
		Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter(styles))
}

func (m *Model) renderCurrent(styles Styles) string {
	cur := m.current

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Temperature.Render(glyphFor(cur.Condition.Icon)),
		styles.Text.Render("  "),
		styles.Temperature.Render(fmt.Sprintf("%d°C", cur.RoundedTemperature())),
		styles.Text.Render("  "),
		styles.Text.Render(m.locale.Description(cur.Condition.Description)),
	)

	aqi := styles.MutedText.Render(m.locale.AirQualityLabel()+": ") +
		styles.AQIStyle(cur.AirQuality).Render(m.locale.AQIText(cur.AirQuality))

	return line + "\n" + aqi
}

func (m *Model) renderForecast(styles Styles) string {
	days := m.forecast
	if len(days) > weather.MaxForecastDays {
		days = days[:weather.MaxForecastDays]
	}

	cols := make([]string, 0, len(days))
	for _, day := range days {
		col := lipgloss.JoinVertical(lipgloss.Center,
			styles.Text.Render(m.locale.Weekday(day.Date.Weekday())),
			styles.Text.Render(glyphFor(day.Condition.Icon)),
			styles.Cold.Render(fmt.Sprintf("↓%d°", day.RoundedMin()))+
				styles.Text.Render(" ")+
				styles.Warm.Render(fmt.Sprintf("↑%d°", day.RoundedMax())),
		)
		cols = append(cols, lipgloss.NewStyle().
			Width(forecastColumnWidth).
			Align(lipgloss.Center).
			Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) renderFooter(styles Styles) string {
	st := m.refreshState()

	parts := []string{m.city}
	if !m.lastUpdated.IsZero() {
		updated := fmt.Sprintf("%s %s", m.locale.UpdatedLabel(), m.lastUpdated.Format("15:04"))
		if st.IsStale() {
			updated = styles.FaintText.Render(updated)
		}
		parts = append(parts, updated)
	}
	if st.InFlight {
		parts = append(parts, m.spinner.View())
	} else if wait := m.nextAttemptIn(); st.ConsecutiveFailures > 0 && wait > 0 {
		parts = append(parts, styles.MutedText.Render(m.locale.RetryIn(wait)))
	}
	parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))

	return styles.Footer.Width(m.width).Render(strings.Join(parts, " · "))
}
