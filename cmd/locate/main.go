// Command locate resolves a starting location the way the web client does
// and prints its weather. Without -lat/-lon there is no device position
// and resolution starts from the IP lookup.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fernandolucchesi/weatherly/internal/client"
	"github.com/fernandolucchesi/weatherly/internal/outfit"
	"github.com/fernandolucchesi/weatherly/internal/resolver"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "Base URL of the weatherly API")
	lat := flag.Float64("lat", 0, "Device latitude")
	lon := flag.Float64("lon", 0, "Device longitude")
	ip := flag.String("ip", "", "Client IP forwarded to the API for IP-based location")
	withOutfit := flag.Bool("outfit", false, "Also ask for outfit advice")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, logger, options{
		server: *server,
		device: deviceFromFlags(*lat, *lon),
		ip:     *ip,
		outfit: *withOutfit,
	}); err != nil {
		logger.Error("locate failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	server string
	device resolver.DeviceLocator
	ip     string
	outfit bool
}

// deviceFromFlags treats unset coordinates as a host without positioning
func deviceFromFlags(lat, lon float64) resolver.DeviceLocator {
	coords := types.NewCoords(lat, lon)
	if coords.IsSentinel() {
		return nil
	}
	return resolver.NewCachedLocator(resolver.StaticLocator{Coords: coords})
}

func run(ctx context.Context, out io.Writer, logger *slog.Logger, opts options) error {
	var clientOpts []client.Option
	if opts.ip != "" {
		clientOpts = append(clientOpts, client.WithForwardedFor(opts.ip))
	}
	api, err := client.NewClient(opts.server, logger, clientOpts...)
	if err != nil {
		return err
	}

	orchestrator := resolver.New(api, opts.device, logger, resolver.WithListener(func(s resolver.Status) {
		fmt.Fprintf(out, "[%s] %s\n", s.State, s.Message)
	}))

	res, err := orchestrator.Resolve(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nLocation: %s (%.4f, %.4f)\n", res.Name, res.Coords.Latitude, res.Coords.Longitude)
	if res.WeatherErr != nil {
		return fmt.Errorf("no weather for %s: %w", res.Name, res.WeatherErr)
	}

	printWeather(out, res.Weather)

	if opts.outfit {
		advice, err := api.Outfit(ctx, outfit.InputFromWeather(*res.Weather))
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Warn("outfit endpoint failed, using local rules", "error", err)
			local := outfit.Recommend(*res.Weather)
			advice = &local
		}
		fmt.Fprintf(out, "\n%s\n  %s\n", advice.Headline, advice.Text)
		if advice.Note != "" {
			fmt.Fprintf(out, "  (%s)\n", advice.Note)
		}
	}

	return nil
}

func printWeather(out io.Writer, w *types.Weather) {
	fmt.Fprintf(out, "Now: %.1f°C, %s", w.TemperatureC, types.GetWeatherDescription(w.WeatherCode))
	if w.Timezone != "" {
		fmt.Fprintf(out, " [%s]", w.Timezone)
	}
	fmt.Fprintln(out)

	for _, d := range w.Daily {
		fmt.Fprintf(out, "  %s  %5.1f / %5.1f°C  %s\n", d.Date, d.TemperatureMaxC, d.TemperatureMinC, types.GetWeatherDescription(d.WeatherCode))
	}
}
