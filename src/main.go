package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"liftbank/src/config"
	"liftbank/src/console"
	"liftbank/src/metrics"
	"liftbank/src/session"
	"liftbank/src/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	opts := config.NewOptions()
	opts.AddFlags(pflag.CommandLine)
	pflag.Parse()
	if err := opts.Complete(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	closeLog, err := utils.InitLogger(os.Stderr, opts.Level(), opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics.Register(reg)
	if opts.MetricsAddr != "" {
		srv := serveMetrics(opts.MetricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	sim := session.New(
		session.WithConfiguration(opts.Floors, opts.Elevators),
		session.WithTravelPerFloor(opts.TravelPerFloor),
	)
	sim.Start(ctx)
	slog.Info("Simulator started",
		"floors", opts.Floors,
		"elevators", opts.Elevators,
		"travelPerFloor", opts.TravelPerFloor)

	err = console.New(sim, os.Stdin, os.Stdout).Run(ctx)
	stop()
	<-sim.Done()
	return err
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "addr", addr, "err", err)
		}
	}()
	slog.Info("Serving metrics", "addr", addr)
	return srv
}
