package outfit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fernandolucchesi/weatherly/internal/types"
)

const promptIntro = "You are a weather forecast assistant. You are given a weather forecast and you need to provide a concise, outfit idea sentence with a tiny compliment. Take into consideration date time and weather."

// BuildPrompt renders the generative request for a posted payload. Today's
// high and low come from the first daily entry.
func BuildPrompt(in Input) string {
	temp := deref(in.TemperatureC)
	code := deref(in.WeatherCode)

	var today DailyInput
	if len(in.Daily) > 0 {
		today = in.Daily[0]
	}

	precipitation := in.MaxPrecipitation
	if precipitation == nil {
		precipitation = today.Precipitation
	}
	probability := in.MaxPrecipitationProbability
	if probability == nil {
		probability = today.PrecipitationProbability
	}

	evening := "Evening trend not provided."
	if in.EveningTemperatureC != nil {
		evening = fmt.Sprintf("Evening around %d°C.", roundHalfUp(*in.EveningTemperatureC))
	}

	lines := []string{
		promptIntro,
		fmt.Sprintf("Loc: %s", deref(in.LocationName)),
		fmt.Sprintf("Now: %d°C, %s (code %d)", roundHalfUp(temp), types.GetWeatherDescription(code), code),
		fmt.Sprintf("Hi/Lo: %s/%s°C", formatOr(today.TemperatureMaxC, "n/a"), formatOr(today.TemperatureMinC, "n/a")),
		fmt.Sprintf("Precip: %s mm max, %s%% chance", formatOr(precipitation, "0"), formatOr(probability, "n/a")),
		fmt.Sprintf("Evening: %s", evening),
		"Rules: Max 1 sentence. Be creative. Be flirty. Celsius only.",
	}
	return strings.Join(lines, "\n")
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func formatOr(v *float64, missing string) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
