package weather

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubSource struct {
	obs        Observation
	aqi        int
	entries    []ForecastEntry
	currentErr error
	airErr     error
	calls      []string
	gotCoords  Coordinates
}

func (s *stubSource) FetchCurrent(_ context.Context, city string) (Observation, error) {
	s.calls = append(s.calls, "current:"+city)
	return s.obs, s.currentErr
}

func (s *stubSource) FetchAirQuality(_ context.Context, coords Coordinates) (int, error) {
	s.calls = append(s.calls, "air")
	s.gotCoords = coords
	return s.aqi, s.airErr
}

func (s *stubSource) FetchForecast(_ context.Context, city string) ([]ForecastEntry, error) {
	s.calls = append(s.calls, "forecast:"+city)
	return s.entries, nil
}

func TestFetcher_AssemblesSnapshot(t *testing.T) {
	fetchedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	src := &stubSource{
		obs: Observation{
			Temperature: 21.3,
			Condition:   Condition{Description: "clear sky", Icon: "01d"},
			Coordinates: Coordinates{Lat: 37.57, Lon: 126.98},
		},
		aqi: 2,
		entries: []ForecastEntry{
			{Time: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), Temp: 18},
		},
	}
	f := &Fetcher{Source: src, City: "Seoul", Location: time.UTC, Now: func() time.Time { return fetchedAt }}

	snap, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if snap.Current.AirQuality != 2 {
		t.Fatalf("AirQuality = %d, want 2", snap.Current.AirQuality)
	}
	if src.gotCoords != (Coordinates{Lat: 37.57, Lon: 126.98}) {
		t.Fatalf("air quality coords = %+v, want coords from current weather", src.gotCoords)
	}
	if len(snap.Forecast) != 1 {
		t.Fatalf("len(Forecast) = %d, want 1", len(snap.Forecast))
	}
	if !snap.FetchedAt.Equal(fetchedAt) {
		t.Fatalf("FetchedAt = %v, want %v", snap.FetchedAt, fetchedAt)
	}
	want := []string{"current:Seoul", "air", "forecast:Seoul"}
	if len(src.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", src.calls, want)
	}
	for i := range want {
		if src.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", src.calls, want)
		}
	}
}

func TestFetcher_StopsAtFirstError(t *testing.T) {
	boom := &StatusError{Endpoint: "/weather", Code: 502}
	src := &stubSource{currentErr: boom}
	f := &Fetcher{Source: src, City: "Seoul"}

	_, err := f.Fetch(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Fetch error = %v, want it to wrap %v", err, boom)
	}
	if len(src.calls) != 1 {
		t.Fatalf("calls = %v, want only the current weather call", src.calls)
	}
}

func TestFetcher_AirQualityErrorPropagates(t *testing.T) {
	src := &stubSource{airErr: Malformed("air quality list")}
	f := &Fetcher{Source: src, City: "Seoul"}

	_, err := f.Fetch(context.Background())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Fetch error = %v, want ErrMalformed", err)
	}
}

func TestFetcher_NilSource(t *testing.T) {
	var f Fetcher
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch returned nil error, want error for missing source")
	}
}
