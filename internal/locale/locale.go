// Package locale holds the two display languages the dashboard supports.
package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Supported API language codes.
const (
	Korean  = "kr"
	English = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.Korean, language.English})

var (
	koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}
	koreanAQI      = [5]string{"좋음", "보통", "나쁨", "매우 나쁨", "위험"}
	englishAQI     = [5]string{"Good", "Fair", "Poor", "Very Poor", "Hazardous"}
)

// Locale formats dates, labels and descriptions for one language.
type Locale struct {
	code string
	tag  language.Tag
}

// Parse resolves a configured language. "kr" is the OpenWeather code for
// Korean; any BCP 47 tag that matches Korean or English is also accepted.
func Parse(code string) (Locale, error) {
	code = strings.TrimSpace(strings.ToLower(code))
	if code == Korean {
		return Locale{code: Korean, tag: language.Korean}, nil
	}

	tag, err := language.Parse(code)
	if err != nil {
		return Locale{}, fmt.Errorf("unsupported language %q: %w", code, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Locale{}, fmt.Errorf("unsupported language %q", code)
	}
	if idx == 0 {
		return Locale{code: Korean, tag: language.Korean}, nil
	}
	return Locale{code: English, tag: language.English}, nil
}

// Default is the Korean locale.
func Default() Locale {
	return Locale{code: Korean, tag: language.Korean}
}

// Code is the value sent as the OpenWeather lang parameter.
func (l Locale) Code() string {
	if l.code == "" {
		return Korean
	}
	return l.code
}

func (l Locale) korean() bool {
	return l.Code() == Korean
}

// Weekday returns the short weekday name.
func (l Locale) Weekday(d time.Weekday) string {
	if l.korean() {
		return koreanWeekdays[d]
	}
	return d.String()[:3]
}

// FormatDate renders the header date line.
func (l Locale) FormatDate(t time.Time) string {
	if l.korean() {
		return t.Format("2006년 01월 02일 ") + l.Weekday(t.Weekday())
	}
	return t.Format("January 02, 2006 ") + l.Weekday(t.Weekday())
}

// FormatClock renders the 12-hour clock.
func (l Locale) FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}

// AirQualityLabel is the caption in front of the AQI text.
func (l Locale) AirQualityLabel() string {
	if l.korean() {
		return "대기질"
	}
	return "Air Quality"
}

// AQIText names an OpenWeather air quality index. Zero means no reading;
// anything above 5 is reported as the worst band.
func (l Locale) AQIText(index int) string {
	if index <= 0 {
		return "-"
	}
	band := min(index, 5) - 1
	if l.korean() {
		return koreanAQI[band]
	}
	return englishAQI[band]
}

// Description tidies a provider description for display. English
// descriptions arrive lower case and are title-cased.
func (l Locale) Description(s string) string {
	if l.korean() {
		return s
	}
	return cases.Title(l.tag).String(s)
}

// LoadingText is shown until the first refresh succeeds.
func (l Locale) LoadingText() string {
	if l.korean() {
		return "날씨 정보를 불러오는 중"
	}
	return "Loading weather"
}

// UpdatedLabel prefixes the time of the last successful refresh.
func (l Locale) UpdatedLabel() string {
	if l.korean() {
		return "업데이트"
	}
	return "Updated"
}

// RetryIn says how long until the next retry, rounded up to whole minutes.
func (l Locale) RetryIn(wait time.Duration) string {
	minutes := int((wait + time.Minute - 1) / time.Minute)
	if l.korean() {
		return fmt.Sprintf("%d분 후 재시도", minutes)
	}
	return fmt.Sprintf("retry in %dm", minutes)
}
