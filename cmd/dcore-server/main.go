/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command dcore-server serves the appointment resource over HTTP with every
// command dispatched through the mediator pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/dcore/httpx"
	"dirpx.dev/dcore/internal/api/rest"
	"dirpx.dev/dcore/internal/appointment"
	"dirpx.dev/dcore/internal/config"
	"dirpx.dev/dcore/internal/logger"
	"dirpx.dev/dcore/mapper"
	"dirpx.dev/dcore/mediator"
	"dirpx.dev/dcore/mediator/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "dcore-server:", err)
		os.Exit(1)
	}
}

// run serves until ctx is done, then shuts down within the configured
// timeout.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return err
	}

	handler, err := newHandler(cfg, log, demoAppointments())
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Bool("metrics", cfg.MetricsEnabled).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server gracefully")

		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// newHandler wires the store, the mediator pipeline and the router.
func newHandler(cfg *config.Config, log zerolog.Logger, seed []appointment.Appointment) (http.Handler, error) {
	m, err := mapper.New()
	if err != nil {
		return nil, err
	}

	svc := appointment.NewService(appointment.NewMemoryStore(seed...))

	mws := []mediator.Middleware{
		middleware.Recovery(log),
		middleware.Tracing(nil),
	}
	var metrics http.Handler
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		mm, err := middleware.Metrics(reg)
		if err != nil {
			return nil, err
		}
		mws = append(mws, mm)
		metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}
	mws = append(mws, middleware.Logging(log), middleware.Validation())

	p, err := mediator.New(
		mediator.WithHandlers(svc.Handlers()...),
		mediator.WithCommands(appointment.Commands()...),
		mediator.WithMiddlewares(mws...),
	)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	w := httpx.Writer{
		Mapper: m,
		OnEncodeError: func(err error) {
			log.Error().Err(err).Msg("response encoding failed")
		},
	}
	h := rest.New(p, w, log)
	return rest.NewRouter(h, metrics, nil), nil
}

func demoAppointments() []appointment.Appointment {
	day := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	return []appointment.Appointment{
		{ID: "a-100", Patient: "Ada Lovelace", Practitioner: "Dr. Babbage", StartsAt: day.Add(9 * time.Hour)},
		{ID: "a-101", Patient: "Alan Turing", Practitioner: "Dr. Church", StartsAt: day.Add(11 * time.Hour)},
	}
}
