package openweather

import (
	"time"

	"github.com/five82/weatherframe/internal/weather"
)

// Required blocks are pointers so a missing field is distinguishable from a
// zero reading.

type coord struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type mainBlock struct {
	Temp      *float64 `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	TempMin   float64  `json:"temp_min"`
	TempMax   float64  `json:"temp_max"`
	Humidity  int      `json:"humidity"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
}

type conditionBlock struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type precipBlock struct {
	OneHour float64 `json:"1h"`
}

// currentResponse mirrors /weather.
type currentResponse struct {
	Name    string           `json:"name"`
	Coord   *coord           `json:"coord"`
	Main    *mainBlock       `json:"main"`
	Wind    *windBlock       `json:"wind"`
	Weather []conditionBlock `json:"weather"`
	Rain    *precipBlock     `json:"rain"`
	Snow    *precipBlock     `json:"snow"`
}

func (r currentResponse) observation() (weather.Observation, error) {
	switch {
	case r.Main == nil || r.Main.Temp == nil:
		return weather.Observation{}, weather.Malformed("current weather missing main.temp")
	case r.Wind == nil:
		return weather.Observation{}, weather.Malformed("current weather missing wind")
	case len(r.Weather) == 0:
		return weather.Observation{}, weather.Malformed("current weather missing weather[0]")
	case r.Coord == nil || r.Coord.Lat == nil || r.Coord.Lon == nil:
		return weather.Observation{}, weather.Malformed("current weather missing coord")
	}

	obs := weather.Observation{
		City:        r.Name,
		Temperature: *r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		TempMin:     r.Main.TempMin,
		TempMax:     r.Main.TempMax,
		Humidity:    r.Main.Humidity,
		WindSpeed:   r.Wind.Speed,
		Condition:   r.Weather[0].condition(),
		Coordinates: weather.Coordinates{Lat: *r.Coord.Lat, Lon: *r.Coord.Lon},
	}
	if r.Rain != nil {
		obs.RainAmount = r.Rain.OneHour
	}
	if r.Snow != nil {
		obs.SnowAmount = r.Snow.OneHour
	}
	return obs, nil
}

// airQualityResponse mirrors /air_pollution.
type airQualityResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

func (r airQualityResponse) index() (int, error) {
	if len(r.List) == 0 {
		return 0, nil
	}
	aqi := r.List[0].Main.AQI
	if aqi < 0 || aqi > 5 {
		return 0, weather.Malformed("air quality index %d out of range", aqi)
	}
	return aqi, nil
}

// forecastResponse mirrors /forecast.
type forecastResponse struct {
	List *[]forecastItem `json:"list"`
}

type forecastItem struct {
	DateTime *int64           `json:"dt"`
	Main     *mainBlock       `json:"main"`
	Weather  []conditionBlock `json:"weather"`
}

func (r forecastResponse) entries() ([]weather.ForecastEntry, error) {
	if r.List == nil {
		return nil, weather.Malformed("forecast missing list")
	}
	items := *r.List
	out := make([]weather.ForecastEntry, 0, len(items))
	for i, item := range items {
		if item.DateTime == nil {
			return nil, weather.Malformed("forecast list[%d] missing dt", i)
		}
		if item.Main == nil || item.Main.Temp == nil {
			return nil, weather.Malformed("forecast list[%d] missing main.temp", i)
		}
		if len(item.Weather) == 0 {
			return nil, weather.Malformed("forecast list[%d] missing weather[0]", i)
		}
		out = append(out, weather.ForecastEntry{
			Time:      time.Unix(*item.DateTime, 0),
			Temp:      *item.Main.Temp,
			TempMin:   item.Main.TempMin,
			TempMax:   item.Main.TempMax,
			Condition: item.Weather[0].condition(),
		})
	}
	return out, nil
}

func (c conditionBlock) condition() weather.Condition {
	return weather.Condition{Description: c.Description, Icon: c.Icon}
}
