package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()

	assert.Equal(t, DefaultFloors, opts.Floors)
	assert.Equal(t, DefaultElevators, opts.Elevators)
	assert.Equal(t, TravelPerFloor, opts.TravelPerFloor)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Empty(t, opts.LogFile)
	assert.Empty(t, opts.MetricsAddr)
}

func TestAddFlagsOverridesDefaults(t *testing.T) {
	opts := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.AddFlags(fs)

	args := []string{
		"--floors", "10",
		"-e", "4",
		"--travel-per-floor", "250ms",
		"--log-level", "debug",
		"--log-file", "sim.log",
		"--metrics-addr", ":9090",
	}
	require.NoError(t, fs.Parse(args))
	require.NoError(t, opts.Complete())
	require.NoError(t, opts.Validate())

	assert.Equal(t, 10, opts.Floors)
	assert.Equal(t, 4, opts.Elevators)
	assert.Equal(t, 250*time.Millisecond, opts.TravelPerFloor)
	assert.Equal(t, slog.LevelDebug, opts.Level())
	assert.Equal(t, "sim.log", opts.LogFile)
	assert.Equal(t, ":9090", opts.MetricsAddr)
}

func TestCompleteClampsCounts(t *testing.T) {
	opts := NewOptions()
	opts.Floors = 30
	opts.Elevators = 1

	require.NoError(t, opts.Complete())
	assert.Equal(t, MaxFloors, opts.Floors)
	assert.Equal(t, MinElevators, opts.Elevators)
}

func TestCompleteRejectsUnknownLogLevel(t *testing.T) {
	opts := NewOptions()
	opts.LogLevel = "chatty"

	assert.Error(t, opts.Complete())
}

func TestValidateRejectsNonPositiveTravel(t *testing.T) {
	opts := NewOptions()
	opts.TravelPerFloor = 0

	require.NoError(t, opts.Complete())
	assert.Error(t, opts.Validate())
}
