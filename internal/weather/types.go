package weather

import (
	"math"
	"time"
)

// Coordinates locate the observed city for follow-up lookups.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Condition is the provider's short description and icon code.
type Condition struct {
	Description string
	Icon        string
}

// Observation mirrors a single current-weather reading.
type Observation struct {
	City        string
	Temperature float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    int
	WindSpeed   float64
	RainAmount  float64 // mm over the last hour
	SnowAmount  float64 // mm over the last hour
	Condition   Condition
	Coordinates Coordinates
}

// Current is an Observation joined with the air quality index.
type Current struct {
	Observation
	AirQuality int // 1 (good) .. 5 (very poor), 0 when unknown
}

// RoundedTemperature returns the temperature rounded for display.
func (c Current) RoundedTemperature() int {
	return roundTemp(c.Temperature)
}

// ForecastEntry is one point of the provider's 3-hourly forecast.
type ForecastEntry struct {
	Time      time.Time
	Temp      float64
	TempMin   float64
	TempMax   float64
	Condition Condition
}

// ForecastDay summarises every forecast entry that falls on one calendar date.
type ForecastDay struct {
	Date        time.Time
	Temperature float64
	TempMin     float64
	TempMax     float64
	Condition   Condition
}

// RoundedMin returns the day's low rounded for display.
func (d ForecastDay) RoundedMin() int {
	return roundTemp(d.TempMin)
}

// RoundedMax returns the day's high rounded for display.
func (d ForecastDay) RoundedMax() int {
	return roundTemp(d.TempMax)
}

// Snapshot is the normalized weather data handed to the presenter.
type Snapshot struct {
	Current   Current
	Forecast  []ForecastDay
	FetchedAt time.Time
}

func roundTemp(v float64) int {
	return int(math.RoundToEven(v))
}
