package openmeteo

import (
	"bytes"
	"encoding/json"
)

// GeocodingResult is one entry of the geocoding search response
type GeocodingResult struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	Admin2      string  `json:"admin2"`
	Admin3      string  `json:"admin3"`
	Admin4      string  `json:"admin4"`
	Elevation   float64 `json:"elevation"`
	Population  int     `json:"population"`
	Timezone    string  `json:"timezone"`
}

// GeocodingAPIResponse keeps results raw: the API omits the field when
// nothing matches, and anything other than an array also means no matches.
type GeocodingAPIResponse struct {
	Results          json.RawMessage `json:"results"`
	GenerationtimeMs float64         `json:"generationtime_ms"`
}

// Matches decodes the results array. ok is false when the field is missing,
// null or not an array.
func (r *GeocodingAPIResponse) Matches() (results []GeocodingResult, ok bool, err error) {
	raw := bytes.TrimSpace(r.Results)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false, nil
	}
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false, err
	}
	return results, true, nil
}

// CurrentWeather is the current_weather block
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	Weathercode int     `json:"weathercode"`
	Time        string  `json:"time"`
	IsDay       *int    `json:"is_day"`
}

// Array entries are pointers because the API emits null for missing values.
type HourlyData struct {
	Time               []string   `json:"time"`
	Temperature2M      []*float64 `json:"temperature_2m"`
	Weathercode        []*int     `json:"weathercode"`
	IsDay              []*int     `json:"is_day"`
	Precipitation      []*float64 `json:"precipitation"`
	Relativehumidity2M []*float64 `json:"relativehumidity_2m"`
}

type DailyData struct {
	Time                        []string   `json:"time"`
	Temperature2MMax            []*float64 `json:"temperature_2m_max"`
	Temperature2MMin            []*float64 `json:"temperature_2m_min"`
	Weathercode                 []*int     `json:"weathercode"`
	PrecipitationSum            []*float64 `json:"precipitation_sum"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}

type ForecastAPIResponse struct {
	Latitude             float64         `json:"latitude"`
	Longitude            float64         `json:"longitude"`
	GenerationtimeMs     float64         `json:"generationtime_ms"`
	UtcOffsetSeconds     int             `json:"utc_offset_seconds"`
	Timezone             string          `json:"timezone"`
	TimezoneAbbreviation string          `json:"timezone_abbreviation"`
	CurrentWeather       *CurrentWeather `json:"current_weather"`
	Hourly               *HourlyData     `json:"hourly"`
	Daily                *DailyData      `json:"daily"`
}
