package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Temperature colours are shared by every theme so low/high always read the
// same way.
const (
	coldColor = "#4a90e2"
	warmColor = "#e24a4a"
)

// aqiColors are indexed by OpenWeather AQI band 1..5.
var aqiColors = [5]string{"#4CAF50", "#FFC107", "#FF9800", "#F44336", "#9C27B0"}

// Theme defines colors for the dashboard.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	bg := lipgloss.Color(t.Background)
	return Styles{
		Frame: lipgloss.NewStyle().
			Background(bg).
			Padding(1, 2),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(bg),

		Clock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(bg).
			Bold(true),

		Temperature: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(bg).
			Bold(true),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Background(bg),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Background(bg),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Background(bg),

		Cold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(coldColor)).
			Background(bg),

		Warm: lipgloss.NewStyle().
			Foreground(lipgloss.Color(warmColor)).
			Background(bg),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Background(lipgloss.Color(t.Surface)).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),

		background: t.Background,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Frame lipgloss.Style

	Text        lipgloss.Style
	Clock       lipgloss.Style
	Temperature lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	Cold        lipgloss.Style
	Warm        lipgloss.Style

	Footer  lipgloss.Style
	Overlay lipgloss.Style

	background string
}

// AQIStyle colours an air quality reading. Zero (no reading) is faint.
func (s Styles) AQIStyle(index int) lipgloss.Style {
	if index <= 0 {
		return s.FaintText
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(AQIColor(index))).
		Background(lipgloss.Color(s.background)).
		Bold(true)
}

// AQIColor returns the hex colour for an AQI band; anything above 4 uses the
// worst band's colour.
func AQIColor(index int) string {
	if index <= 0 {
		return ""
	}
	return aqiColors[min(index, 5)-1]
}

// Theme definitions

var themes = map[string]Theme{
	"Midnight": midnightTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
}

var themeOrder = []string{"Midnight", "Nightfox", "Kanagawa"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return midnightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func midnightTheme() Theme {
	// Black wall-display look.
	return Theme{
		Name: "Midnight",

		Background: "#000000",
		Surface:    "#111111",
		Border:     "#333333",

		Text:    "#ffffff",
		Muted:   "#aaaaaa",
		Faint:   "#666666",
		Accent:  "#6495ed",
		Warning: "#ffc107",
		Danger:  "#f44336",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Border:     "#39506d", // bg4

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		Border:     "#54546D", // sumiInk6

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
	}
}
