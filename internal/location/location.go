package location

import (
	"context"
	"log/slog"

	"github.com/fernandolucchesi/weatherly/internal/types"
)

// Accuracy tells clients where an approximate location came from
type Accuracy string

const (
	AccuracyApprox  Accuracy = "approx"
	AccuracyDefault Accuracy = "default"
)

// DefaultName labels DefaultCoords. It is authoritative, so clients skip
// reverse geocoding when they receive AccuracyDefault.
const DefaultName = "Oslo, Norway"

// DefaultCoords is the location of last resort
var DefaultCoords = types.NewCoords(59.9139, 10.7522)

// ApproxLocation is the body of a /geo answer
type ApproxLocation struct {
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
	Accuracy Accuracy `json:"accuracy"`
}

// IPLocator resolves a client IP to coordinates, nil when unknown
type IPLocator interface {
	GetLocationFromIP(ctx context.Context, ip string) *types.Coords
}

// Service picks the best approximate location for a client
type Service interface {
	// Resolve tries explicit coordinates, then the client IP, then the
	// default location. The (0,0) sentinel is never returned as approx.
	Resolve(ctx context.Context, explicit *types.Coords, clientIP string) ApproxLocation
}

type locationService struct {
	ipLocator IPLocator
	logger    *slog.Logger
}

func NewLocationService(ipLocator IPLocator, logger *slog.Logger) Service {
	return &locationService{
		ipLocator: ipLocator,
		logger:    logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, explicit *types.Coords, clientIP string) ApproxLocation {
	if usable(explicit) {
		return approx(*explicit)
	}
	if explicit != nil {
		s.logger.Debug("ignoring explicit coordinates", "latitude", explicit.Latitude, "longitude", explicit.Longitude)
	}

	if clientIP != "" && s.ipLocator != nil {
		coords := s.ipLocator.GetLocationFromIP(ctx, clientIP)
		if usable(coords) {
			return approx(*coords)
		}
		s.logger.Debug("no usable location for client IP", "ip", clientIP)
	}

	return ApproxLocation{
		Lat:      DefaultCoords.Latitude,
		Lon:      DefaultCoords.Longitude,
		Accuracy: AccuracyDefault,
	}
}

func usable(c *types.Coords) bool {
	return c != nil && c.Valid() && !c.IsSentinel()
}

func approx(c types.Coords) ApproxLocation {
	return ApproxLocation{Lat: c.Latitude, Lon: c.Longitude, Accuracy: AccuracyApprox}
}
