package types

import (
	"fmt"
	"math"
)

type Coords struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether both components are finite and in range
func (c Coords) Valid() bool {
	return ValidLatitude(c.Latitude) && ValidLongitude(c.Longitude)
}

// IsSentinel reports whether c is (0,0), which geolocation sources use to
// signal a failed lookup. It is never treated as a real location.
func (c Coords) IsSentinel() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Label formats the coordinates as a display name of last resort
func (c Coords) Label() string {
	return fmt.Sprintf("%.2f, %.2f", c.Latitude, c.Longitude)
}

func ValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

func ValidLongitude(lon float64) bool {
	return !math.IsNaN(lon) && lon >= -180 && lon <= 180
}
