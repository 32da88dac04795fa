// Package outfit suggests what to wear for a forecast, either from a
// generative model or from fixed temperature and precipitation rules.
package outfit

import (
	"fmt"
	"strings"

	"github.com/fernandolucchesi/weatherly/internal/types"
)

const (
	Headline = "What to wear today"
	RuleNote = "Rule-based suggestion. AI fallback used only when OpenAI is unavailable."

	mildConditions = "Dress comfortably for mild conditions."
)

// Advice is the body of an /outfit answer. Both the generative and the
// rule-based paths produce the same shape.
type Advice struct {
	Headline string `json:"headline"`
	Text     string `json:"text"`
	Note     string `json:"note,omitempty"`
}

// Input is the weather-like payload clients post. Only the current
// conditions are required.
type Input struct {
	LocationName                *string      `json:"locationName" binding:"required"`
	TemperatureC                *float64     `json:"temperatureC" binding:"required"`
	WeatherCode                 *int         `json:"weatherCode" binding:"required"`
	IsDay                       *bool        `json:"isDay,omitempty"`
	Daily                       []DailyInput `json:"daily,omitempty"`
	MaxPrecipitation            *float64     `json:"maxPrecipitation,omitempty"`
	MaxPrecipitationProbability *float64     `json:"maxPrecipitationProbability,omitempty"`
	EveningTemperatureC         *float64     `json:"eveningTemperatureC,omitempty"`
}

// DailyInput is a partial daily forecast; every field may be missing
type DailyInput struct {
	Date                     *string  `json:"date,omitempty"`
	WeatherCode              *int     `json:"weatherCode,omitempty"`
	TemperatureMaxC          *float64 `json:"temperatureMaxC,omitempty"`
	TemperatureMinC          *float64 `json:"temperatureMinC,omitempty"`
	Precipitation            *float64 `json:"precipitation,omitempty"`
	PrecipitationProbability *float64 `json:"precipitationProbability,omitempty"`
}

// Normalize turns a posted payload into a Weather. Missing daily values
// take the current conditions and missing dates become "day-N".
func Normalize(in Input) types.Weather {
	temp := deref(in.TemperatureC)
	code := deref(in.WeatherCode)

	weather := types.Weather{
		LocationName: deref(in.LocationName),
		TemperatureC: temp,
		WeatherCode:  code,
		IsDay:        in.IsDay,
		Timezone:     types.DefaultTimezone,
	}

	if in.Daily != nil {
		weather.Daily = make([]types.DailyForecast, 0, len(in.Daily))
		for i, d := range in.Daily {
			date := fmt.Sprintf("day-%d", i)
			if d.Date != nil {
				date = *d.Date
			}
			weather.Daily = append(weather.Daily, types.DailyForecast{
				Date:                     date,
				TemperatureMaxC:          valueOr(d.TemperatureMaxC, temp),
				TemperatureMinC:          valueOr(d.TemperatureMinC, temp),
				WeatherCode:              valueOr(d.WeatherCode, code),
				Precipitation:            d.Precipitation,
				PrecipitationProbability: d.PrecipitationProbability,
			})
		}
	}

	return weather
}

// InputFromWeather builds the payload a client posts for a forecast it
// already holds.
func InputFromWeather(weather types.Weather) Input {
	in := Input{
		LocationName: &weather.LocationName,
		TemperatureC: &weather.TemperatureC,
		WeatherCode:  &weather.WeatherCode,
		IsDay:        weather.IsDay,
	}
	if weather.Daily != nil {
		in.Daily = make([]DailyInput, 0, len(weather.Daily))
		for _, d := range weather.Daily {
			in.Daily = append(in.Daily, DailyInput{
				Date:                     &d.Date,
				WeatherCode:              &d.WeatherCode,
				TemperatureMaxC:          &d.TemperatureMaxC,
				TemperatureMinC:          &d.TemperatureMinC,
				Precipitation:            d.Precipitation,
				PrecipitationProbability: d.PrecipitationProbability,
			})
		}
	}
	return in
}

// Recommend applies the clothing rules to the current conditions. The
// first bullet comes from snow or the temperature band, the rest are
// additive.
func Recommend(weather types.Weather) Advice {
	temp := weather.TemperatureC
	code := weather.WeatherCode

	var currentPrecipitation *float64
	if len(weather.Hourly) > 0 {
		currentPrecipitation = weather.Hourly[0].Precipitation
	}

	var bullets []string

	switch {
	case types.IsSnowy(code):
		bullets = append(bullets, "Insulated jacket, gloves, beanie, waterproof boots")
	case temp <= 5:
		bullets = append(bullets, "Heavy coat, scarf, gloves")
	case temp <= 12:
		bullets = append(bullets, "Warm jacket or fleece layer")
	case temp <= 18:
		bullets = append(bullets, "Light jacket or thick sweater")
	case temp <= 24:
		bullets = append(bullets, "Long sleeves or light layers")
	default:
		bullets = append(bullets, "T-shirt and breathable fabrics")
	}

	if types.IsWet(code, currentPrecipitation) {
		bullets = append(bullets, "Waterproof layer and umbrella")
	}

	if temp >= 26 {
		bullets = append(bullets, "Cap/sunglasses, stay hydrated")
	}

	if weather.IsDay != nil && !*weather.IsDay && temp <= 16 {
		bullets = append(bullets, "Evening: bring an extra layer")
	}

	text := strings.Join(bullets, "; ")
	if text == "" {
		text = mildConditions
	}

	return Advice{
		Headline: Headline,
		Text:     text,
		Note:     RuleNote,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
