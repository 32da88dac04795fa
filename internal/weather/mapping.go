package weather

import (
	"github.com/fernandolucchesi/weatherly/internal/providers/openmeteo"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

// mapForecastAPIResponseToWeather normalizes a response that is known to
// carry current conditions. Missing required numbers become 0, missing
// optional ones are omitted.
func mapForecastAPIResponseToWeather(apiResponse *openmeteo.ForecastAPIResponse, locationName string, hourlyLimit int) *types.Weather {
	current := apiResponse.CurrentWeather

	weather := &types.Weather{
		LocationName: locationName,
		TemperatureC: current.Temperature,
		WeatherCode:  current.Weathercode,
		IsDay:        boolPtr(isOne(current.IsDay)),
		Timezone:     apiResponse.Timezone,
	}

	if h := apiResponse.Hourly; h != nil && len(h.Time) > 0 {
		n := min(len(h.Time), hourlyLimit)
		hourly := make([]types.HourlyForecast, 0, n)
		for i := 0; i < n; i++ {
			hourly = append(hourly, types.HourlyForecast{
				Time:          h.Time[i],
				TemperatureC:  floatAt(h.Temperature2M, i),
				WeatherCode:   intAt(h.Weathercode, i),
				IsDay:         boolPtr(isOne(ptrAt(h.IsDay, i))),
				Precipitation: ptrAt(h.Precipitation, i),
				Humidity:      ptrAt(h.Relativehumidity2M, i),
			})
		}
		weather.Hourly = hourly
	}

	if d := apiResponse.Daily; d != nil && len(d.Time) > 0 {
		daily := make([]types.DailyForecast, 0, len(d.Time))
		for i, date := range d.Time {
			daily = append(daily, types.DailyForecast{
				Date:                     date,
				TemperatureMaxC:          floatAt(d.Temperature2MMax, i),
				TemperatureMinC:          floatAt(d.Temperature2MMin, i),
				WeatherCode:              intAt(d.Weathercode, i),
				Precipitation:            ptrAt(d.PrecipitationSum, i),
				PrecipitationProbability: ptrAt(d.PrecipitationProbabilityMax, i),
			})
		}
		weather.Daily = daily
	}

	return weather
}

// ptrAt returns values[i], or nil when the index is out of range
func ptrAt[T any](values []*T, i int) *T {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}

func floatAt(values []*float64, i int) float64 {
	if v := ptrAt(values, i); v != nil {
		return *v
	}
	return 0
}

func intAt(values []*int, i int) int {
	if v := ptrAt(values, i); v != nil {
		return *v
	}
	return 0
}

func isOne(flag *int) bool {
	return flag != nil && *flag == 1
}

func boolPtr(b bool) *bool {
	return &b
}
