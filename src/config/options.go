package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Options contains the command-line configuration of the simulator.
type Options struct {
	Floors         int           // Initial number of floors, clamped to [MinFloors, MaxFloors].
	Elevators      int           // Initial number of elevators, clamped to [MinElevators, MaxElevators].
	TravelPerFloor time.Duration // Simulated travel time between two adjacent floors.

	LogLevel    string // debug, info, warn or error.
	LogFile     string // Also write logs to this file when set.
	MetricsAddr string // Serve Prometheus metrics on this address when set.

	level slog.Level
}

// NewOptions returns Options initialized with default values.
func NewOptions() *Options {
	return &Options{
		Floors:         DefaultFloors,
		Elevators:      DefaultElevators,
		TravelPerFloor: TravelPerFloor,
		LogLevel:       "info",
	}
}

// AddFlags binds the Options fields to command-line flags on the given FlagSet.
func (opts *Options) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		fs = pflag.CommandLine
	}
	fs.IntVarP(&opts.Floors, "floors", "f", opts.Floors,
		fmt.Sprintf("Number of floors (%d-%d).", MinFloors, MaxFloors))
	fs.IntVarP(&opts.Elevators, "elevators", "e", opts.Elevators,
		fmt.Sprintf("Number of elevators (%d-%d).", MinElevators, MaxElevators))
	fs.DurationVar(&opts.TravelPerFloor, "travel-per-floor", opts.TravelPerFloor,
		"Simulated travel time per floor.")
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel,
		"Log level: debug, info, warn or error.")
	fs.StringVar(&opts.LogFile, "log-file", opts.LogFile,
		"Also write logs to this file.")
	fs.StringVar(&opts.MetricsAddr, "metrics-addr", opts.MetricsAddr,
		"Address to serve Prometheus metrics on, e.g. :9090. Disabled when empty.")
}

// Complete performs post-processing of parsed command-line arguments.
// Counts are clamped the same way the operator console clamps them.
func (opts *Options) Complete() error {
	opts.Floors = ClampFloors(opts.Floors)
	opts.Elevators = ClampElevators(opts.Elevators)
	if err := opts.level.UnmarshalText([]byte(strings.TrimSpace(opts.LogLevel))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}
	return nil
}

// Validate checks the completed Options.
func (opts *Options) Validate() error {
	if opts.TravelPerFloor <= 0 {
		return errors.New("travel-per-floor must be positive")
	}
	return nil
}

// Level returns the log level parsed by Complete.
func (opts *Options) Level() slog.Level {
	return opts.level
}
