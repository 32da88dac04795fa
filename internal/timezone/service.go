package timezone

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves IANA timezone names from coordinates. It backs forecasts
// whose provider response carries no timezone.
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
	logger *slog.Logger
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide finder, loading the polygon data on
// first use. Loading takes tens of megabytes so it happens once.
func NewService(logger *slog.Logger) (Service, error) {
	once.Do(func() {
		started := time.Now()
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
			logger: logger.With("component", "timezone-service"),
		}
		instance.logger.Debug("timezone finder loaded", "duration", time.Since(started))
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "Europe/Oslo". tzf takes longitude first.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}
