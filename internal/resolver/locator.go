package resolver

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fernandolucchesi/weatherly/internal/types"
)

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("device position unavailable")
)

// LocateOptions bound a device location request
type LocateOptions struct {
	// Timeout caps how long the device may take to produce a fix
	Timeout time.Duration
	// MaximumAge accepts a cached fix no older than this
	MaximumAge time.Duration
	// HighAccuracy asks for a precise fix; weather needs only a coarse one
	HighAccuracy bool
}

// DefaultLocateOptions waits 10s and accepts a fix up to 5 minutes old
var DefaultLocateOptions = LocateOptions{
	Timeout:      10 * time.Second,
	MaximumAge:   5 * time.Minute,
	HighAccuracy: false,
}

// Fix is a device position and when it was taken
type Fix struct {
	Coords    types.Coords
	Timestamp time.Time
}

// DeviceLocator produces a position from the device itself. Implementations
// return ErrPermissionDenied when the user refused access.
type DeviceLocator interface {
	Locate(ctx context.Context, opts LocateOptions) (Fix, error)
}

// StaticLocator always reports the same position, e.g. one given on the
// command line.
type StaticLocator struct {
	Coords types.Coords
}

func (l StaticLocator) Locate(ctx context.Context, opts LocateOptions) (Fix, error) {
	if err := ctx.Err(); err != nil {
		return Fix{}, err
	}
	return Fix{Coords: l.Coords, Timestamp: time.Now()}, nil
}

// Unavailable is a device without positioning
type Unavailable struct{}

func (Unavailable) Locate(ctx context.Context, opts LocateOptions) (Fix, error) {
	return Fix{}, ErrPositionUnavailable
}

// CachedLocator reuses the last fix from source while it is younger than
// the requested MaximumAge.
type CachedLocator struct {
	source DeviceLocator
	now    func() time.Time

	mu   sync.Mutex
	last *Fix
}

func NewCachedLocator(source DeviceLocator) *CachedLocator {
	return &CachedLocator{source: source, now: time.Now}
}

func (l *CachedLocator) Locate(ctx context.Context, opts LocateOptions) (Fix, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.last != nil && opts.MaximumAge > 0 && l.now().Sub(l.last.Timestamp) <= opts.MaximumAge {
		return *l.last, nil
	}

	fix, err := l.source.Locate(ctx, opts)
	if err != nil {
		return Fix{}, err
	}
	l.last = &fix
	return fix, nil
}
