package weather

import "time"

const (
	// MaxForecastDays is the number of daily columns the dashboard renders.
	MaxForecastDays = 5

	daytimeStartHour = 9
	daytimeEndHour   = 18
)

// AggregateForecast collapses 3-hourly entries into one summary per local
// calendar date, keeping dates in the order they first appear.
//
// The first entry of a date seeds the summary. Later entries widen the
// min/max range, and a later entry between 09:00 and 18:59 local time
// replaces the representative temperature and condition.
func AggregateForecast(entries []ForecastEntry, loc *time.Location, maxDays int) []ForecastDay {
	if loc == nil {
		loc = time.Local
	}
	if maxDays <= 0 {
		maxDays = MaxForecastDays
	}

	days := make([]ForecastDay, 0, maxDays+1)
	index := make(map[time.Time]int)

	for _, entry := range entries {
		local := entry.Time.In(loc)
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		i, seen := index[date]
		if !seen {
			index[date] = len(days)
			days = append(days, ForecastDay{
				Date:        date,
				Temperature: entry.Temp,
				TempMin:     entry.TempMin,
				TempMax:     entry.TempMax,
				Condition:   entry.Condition,
			})
			continue
		}

		day := &days[i]
		day.TempMin = min(day.TempMin, entry.TempMin)
		day.TempMax = max(day.TempMax, entry.TempMax)
		if hour := local.Hour(); hour >= daytimeStartHour && hour <= daytimeEndHour {
			day.Temperature = entry.Temp
			day.Condition = entry.Condition
		}
	}

	if len(days) > maxDays {
		days = days[:maxDays]
	}
	return days
}
