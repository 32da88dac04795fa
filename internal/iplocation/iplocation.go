// Package iplocation resolves approximate coordinates from a client IP.
package iplocation

import (
	"context"
	"log/slog"

	"github.com/fernandolucchesi/weatherly/internal/providers/ipapi"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

// LookupProvider resolves an IP address to a raw location
type LookupProvider interface {
	Lookup(ctx context.Context, ip string) (*ipapi.LookupAPIResponse, error)
}

// Service resolves client IPs to coordinates
type Service interface {
	// GetLocationFromIP returns nil whenever no trustworthy location is
	// available. It never returns an error.
	GetLocationFromIP(ctx context.Context, ip string) *types.Coords
}

type ipLocationService struct {
	provider LookupProvider
	logger   *slog.Logger
}

func NewIPLocationService(provider LookupProvider, logger *slog.Logger) Service {
	return &ipLocationService{
		provider: provider,
		logger:   logger.With("component", "iplocation-service"),
	}
}

func (s *ipLocationService) GetLocationFromIP(ctx context.Context, ip string) *types.Coords {
	resp, err := s.provider.Lookup(ctx, ip)
	if err != nil {
		s.logger.Debug("IP lookup failed", "ip", ip, "error", err)
		return nil
	}

	if resp.Status == "fail" || resp.Message != "" {
		s.logger.Debug("IP lookup rejected by provider", "ip", ip, "message", resp.Message)
		return nil
	}

	lat := firstSet(resp.Lat, resp.Latitude)
	lon := firstSet(resp.Lon, resp.Longitude)
	if lat == nil || lon == nil {
		return nil
	}

	coords := types.NewCoords(*lat, *lon)
	if !coords.Valid() {
		s.logger.Debug("IP lookup returned invalid coordinates", "ip", ip, "latitude", *lat, "longitude", *lon)
		return nil
	}

	return &coords
}

func firstSet(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
