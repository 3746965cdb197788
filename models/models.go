// Package models defines data structures used throughout the application
package models

// Location describes the resolved geographic position of a client.
// It is produced once per request by the geolocation resolver and
// never mutated afterwards.
type Location struct {
	Latitude    float64
	Longitude   float64
	City        string
	CountryName string
}

// WeatherSnapshot is the decoded upstream One Call payload covering
// current conditions, the multi-day forecast and short-interval
// precipitation samples.
type WeatherSnapshot struct {
	Current  CurrentConditions     `json:"current"`
	Daily    []DailyForecast       `json:"daily"`
	Minutely []PrecipitationSample `json:"minutely"`
}

// CurrentConditions holds the current weather readings.
type CurrentConditions struct {
	Temp      float64            `json:"temp"`
	WindSpeed float64            `json:"wind_speed"`
	Humidity  float64            `json:"humidity"`
	Weather   []WeatherCondition `json:"weather"`
}

// DailyForecast holds a single day's forecast. DT is epoch seconds.
type DailyForecast struct {
	DT      int64              `json:"dt"`
	Temp    DayTemperature     `json:"temp"`
	Weather []WeatherCondition `json:"weather"`
}

// DayTemperature holds the daytime temperature of a forecast day.
type DayTemperature struct {
	Day float64 `json:"day"`
}

// WeatherCondition is one upstream condition entry.
type WeatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PrecipitationSample is one minutely precipitation reading.
type PrecipitationSample struct {
	Precipitation float64 `json:"precipitation"`
}

// Season is one of the four seasons, derived from latitude and month.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// String returns the lowercase season name.
func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	default:
		return "winter"
	}
}

// Icon is a canonical weather icon, independent of the upstream
// provider's raw condition codes.
type Icon int

const (
	IconClearDay Icon = iota
	IconClearNight
	IconCloud
	IconDrizzle
	IconRain
	IconThunderstorm
	IconSnow
	IconMist
)

// String returns the feather icon name used by the page script.
func (i Icon) String() string {
	switch i {
	case IconClearDay:
		return "sun"
	case IconClearNight:
		return "moon"
	case IconDrizzle:
		return "cloud-drizzle"
	case IconRain:
		return "cloud-rain"
	case IconThunderstorm:
		return "cloud-lightning"
	case IconSnow:
		return "cloud-snow"
	case IconMist:
		return "wind"
	default:
		return "cloud"
	}
}

// NextDay is the compact forecast card for one of the next three days.
type NextDay struct {
	Day  string
	Temp string
	Icon string
}

// TemplateContext is the fully-resolved view model consumed by the
// HTML renderer. It is built fresh per request and discarded after
// the render call.
type TemplateContext struct {
	Day         string
	DayShort    string
	Date        string
	City        string
	Temp        string
	Rain        string
	Wind        string
	Humidity    string
	Description string
	Icon        string
	NextDays    []NextDay
	IsMetric    bool
}
