package types

// DefaultTimezone is used when neither the provider nor a lookup yields one
const DefaultTimezone = "UTC"

// Weather is the normalized forecast for one location. Temperatures are in
// Celsius and conditions are WMO codes.
type Weather struct {
	LocationName string           `json:"locationName"`
	TemperatureC float64          `json:"temperatureC"`
	WeatherCode  int              `json:"weatherCode"`
	IsDay        *bool            `json:"isDay,omitempty"`
	Timezone     string           `json:"timezone,omitempty"`
	Hourly       []HourlyForecast `json:"hourly,omitempty"`
	Daily        []DailyForecast  `json:"daily,omitempty"`
}

// HourlyForecast is one hour of forecast. Time is a naive ISO-8601 local
// datetime ("2025-01-15T10:00") in the parent Weather's timezone.
type HourlyForecast struct {
	Time          string   `json:"time"`
	TemperatureC  float64  `json:"temperatureC"`
	WeatherCode   int      `json:"weatherCode"`
	IsDay         *bool    `json:"isDay,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"` // mm
	Humidity      *float64 `json:"humidity,omitempty"`      // percentage
}

// DailyForecast is one local calendar day (YYYY-MM-DD) of forecast
type DailyForecast struct {
	Date                     string   `json:"date"`
	TemperatureMaxC          float64  `json:"temperatureMaxC"`
	TemperatureMinC          float64  `json:"temperatureMinC"`
	WeatherCode              int      `json:"weatherCode"`
	Precipitation            *float64 `json:"precipitation,omitempty"`            // mm
	PrecipitationProbability *float64 `json:"precipitationProbability,omitempty"` // percentage
}
