package weather

import (
	"context"
	"fmt"
	"time"
)

// Source performs the provider round-trips a refresh needs.
type Source interface {
	FetchCurrent(ctx context.Context, city string) (Observation, error)
	FetchAirQuality(ctx context.Context, coords Coordinates) (int, error)
	FetchForecast(ctx context.Context, city string) ([]ForecastEntry, error)
}

// Fetcher assembles a Snapshot for one city. Its fields are read-only once
// the fetcher is handed to the refresh scheduler.
type Fetcher struct {
	Source   Source
	City     string
	Location *time.Location // local zone used to bucket forecast days
	Now      func() time.Time
}

// Fetch runs current → air quality → forecast sequentially and returns the
// first error encountered.
func (f *Fetcher) Fetch(ctx context.Context) (Snapshot, error) {
	if f == nil || f.Source == nil {
		return Snapshot{}, fmt.Errorf("weather fetcher has no source")
	}

	obs, err := f.Source.FetchCurrent(ctx, f.City)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch current weather: %w", err)
	}

	aqi, err := f.Source.FetchAirQuality(ctx, obs.Coordinates)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch air quality: %w", err)
	}

	entries, err := f.Source.FetchForecast(ctx, f.City)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch forecast: %w", err)
	}

	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	return Snapshot{
		Current:   Current{Observation: obs, AirQuality: aqi},
		Forecast:  AggregateForecast(entries, f.Location, MaxForecastDays),
		FetchedAt: now(),
	}, nil
}
