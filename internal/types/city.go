package types

import "strconv"

// City is a normalized city search result
type City struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Admin1  string  `json:"admin1,omitempty"` // state/province/region
	Admin2  string  `json:"admin2,omitempty"` // county/district
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CityID builds the stable "lat,lon" id. Provider numeric ids are not
// unique across result sets, coordinates are.
func CityID(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
