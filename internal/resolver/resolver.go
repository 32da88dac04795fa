// Package resolver finds the user's starting location by walking device
// position, IP lookup and a fixed default, naming the place and loading
// its weather through the weatherly API.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fernandolucchesi/weatherly/internal/location"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

type State string

const (
	StateIdle     State = "idle"
	StateLocating State = "locating"
	StateUsingGeo State = "using-geo"
	StateUsingIP  State = "using-ip"
	StateFallback State = "fallback"
	StateDenied   State = "denied"
	StateError    State = "error"
)

// Status is what a UI shows while resolution is in progress
type Status struct {
	State   State
	Message string
}

var (
	statusDetecting   = Status{StateLocating, "Detecting location…"}
	statusRequesting  = Status{StateLocating, "Requesting device location…"}
	statusUsingDevice = Status{StateUsingGeo, "Using device location"}
	statusDenied      = Status{StateDenied, "Location permission denied. Falling back to IP-based location."}
	statusUsingIP     = Status{StateUsingIP, "Using IP-based location"}
	statusFallback    = Status{StateFallback, "Using default location (Oslo, Norway)"}
	statusError       = Status{StateError, "Could not detect location. Using default."}
)

// API is the subset of the weatherly API the resolver calls
type API interface {
	Geo(ctx context.Context, explicit *types.Coords) (*location.ApproxLocation, error)
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
	Weather(ctx context.Context, latitude, longitude float64, locationName string) (*types.Weather, error)
}

// Listener receives every status change of the current run. It is called
// with the orchestrator's lock held and must not call back into it.
type Listener func(Status)

// Result is where resolution ended. Weather is nil when WeatherErr is set.
type Result struct {
	Coords     types.Coords
	Name       string
	State      State
	Weather    *types.Weather
	WeatherErr error
}

type Option func(*Orchestrator)

// WithLocateOptions overrides DefaultLocateOptions
func WithLocateOptions(opts LocateOptions) Option {
	return func(o *Orchestrator) {
		o.locateOpts = opts
	}
}

// WithListener subscribes to status changes
func WithListener(listener Listener) Option {
	return func(o *Orchestrator) {
		o.listener = listener
	}
}

type Orchestrator struct {
	api        API
	device     DeviceLocator
	locateOpts LocateOptions
	listener   Listener
	logger     *slog.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	status     Status
}

// New creates an orchestrator. device may be nil when the host has no
// positioning at all, in which case resolution starts with the IP lookup.
func New(api API, device DeviceLocator, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		api:        api,
		device:     device,
		locateOpts: DefaultLocateOptions,
		logger:     logger.With("component", "location-resolver"),
		status:     Status{State: StateIdle},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Status returns the latest status of the current run
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Resolve runs the chain and always ends on a usable location unless ctx
// is cancelled or a newer run supersedes this one.
func (o *Orchestrator) Resolve(ctx context.Context) (*Result, error) {
	ctx, gen := o.begin(ctx)
	defer o.end(gen)

	res, err := o.run(ctx, gen)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("location resolution abandoned: %w", context.Cause(ctx))
	}
	return res, nil
}

// Retry starts over from device location, cancelling any run in flight
func (o *Orchestrator) Retry(ctx context.Context) (*Result, error) {
	return o.Resolve(ctx)
}

func (o *Orchestrator) begin(parent context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	o.generation++
	o.cancel = cancel
	o.publishLocked(statusDetecting)
	return ctx, o.generation
}

func (o *Orchestrator) end(gen uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen == o.generation && o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

// publish drops updates from superseded runs
func (o *Orchestrator) publish(gen uint64, status Status) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		return
	}
	o.publishLocked(status)
}

func (o *Orchestrator) publishLocked(status Status) {
	o.status = status
	o.logger.Debug("location status", "state", status.State, "message", status.Message)
	if o.listener != nil {
		o.listener(status)
	}
}

func (o *Orchestrator) run(ctx context.Context, gen uint64) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("location resolution panicked", "panic", r)
			o.publish(gen, statusError)
			res, err = o.fallback(ctx, gen), nil
		}
	}()

	if o.device == nil {
		return o.fromIP(ctx, gen), nil
	}

	o.publish(gen, statusRequesting)

	fix, err := o.locate(ctx)
	if err != nil || !usable(fix.Coords) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		o.logger.Debug("device location unavailable", "error", err)
		o.publish(gen, statusDenied)
		return o.fromIP(ctx, gen), nil
	}

	o.publish(gen, statusUsingDevice)

	res = o.load(ctx, fix.Coords, o.placeName(ctx, fix.Coords), StateUsingGeo)
	if res.WeatherErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		o.logger.Warn("weather for device location failed", "error", res.WeatherErr)
		o.publish(gen, statusError)
		return o.fallback(ctx, gen), nil
	}
	return res, nil
}

func (o *Orchestrator) locate(ctx context.Context) (Fix, error) {
	if o.locateOpts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.locateOpts.Timeout)
		defer cancel()
	}
	return o.device.Locate(ctx, o.locateOpts)
}

func (o *Orchestrator) fromIP(ctx context.Context, gen uint64) *Result {
	o.publish(gen, statusUsingIP)

	approx, err := o.api.Geo(ctx, nil)
	if err != nil {
		o.logger.Warn("IP location lookup failed", "error", err)
		return o.fallback(ctx, gen)
	}

	coords := types.NewCoords(approx.Lat, approx.Lon)
	if !usable(coords) {
		return o.fallback(ctx, gen)
	}

	var res *Result
	if approx.Accuracy == location.AccuracyDefault {
		res = o.load(ctx, coords, location.DefaultName, StateUsingIP)
	} else {
		res = o.load(ctx, coords, o.placeName(ctx, coords), StateUsingIP)
	}

	if res.WeatherErr != nil {
		o.logger.Warn("weather for IP location failed", "error", res.WeatherErr)
		return o.fallback(ctx, gen)
	}
	return res
}

// fallback is the terminal step. Its Result is returned even when the
// weather request fails.
func (o *Orchestrator) fallback(ctx context.Context, gen uint64) *Result {
	o.publish(gen, statusFallback)
	return o.load(ctx, location.DefaultCoords, location.DefaultName, StateFallback)
}

func (o *Orchestrator) load(ctx context.Context, coords types.Coords, name string, state State) *Result {
	weather, err := o.api.Weather(ctx, coords.Latitude, coords.Longitude, name)
	return &Result{
		Coords:     coords,
		Name:       name,
		State:      state,
		Weather:    weather,
		WeatherErr: err,
	}
}

// placeName falls back to the coordinates when reverse geocoding fails or
// knows no name.
func (o *Orchestrator) placeName(ctx context.Context, coords types.Coords) string {
	name, err := o.api.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		o.logger.Debug("reverse geocoding failed", "error", err)
	}
	if err != nil || name == "" {
		return coords.Label()
	}
	return name
}

func usable(c types.Coords) bool {
	return c.Valid() && !c.IsSentinel()
}
