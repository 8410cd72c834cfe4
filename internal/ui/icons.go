package ui

import "strings"

// iconGlyphs maps the two-digit OpenWeather icon group to a terminal glyph.
// https://openweathermap.org/weather-conditions
var iconGlyphs = map[string]string{
	"01": "☀",
	"02": "⛅",
	"03": "☁",
	"04": "☁",
	"09": "☂",
	"10": "☔",
	"11": "⚡",
	"13": "❄",
	"50": "≋",
}

// glyphFor returns a glyph for an icon code such as "10d". Clear nights get
// a moon.
func glyphFor(code string) string {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return "·"
	}
	if code == "01n" {
		return "☾"
	}
	if g, ok := iconGlyphs[code[:2]]; ok {
		return g
	}
	return "·"
}
