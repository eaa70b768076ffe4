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

package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/dcore/mediator"
)

// Metrics counts dispatches and observes their latency.
//
// Collectors:
//
//	dcore_commands_total{command,outcome,family}
//	dcore_command_duration_seconds{command}
//
// family is the error family of a failure or error and "none" for a success.
// Registering twice on the same registerer reuses the existing collectors,
// so several pipelines may share one registry.
func Metrics(reg prometheus.Registerer) (mediator.Middleware, error) {
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dcore_commands_total",
		Help: "Number of dispatched commands by outcome and error family.",
	}, []string{"command", "outcome", "family"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dcore_command_duration_seconds",
		Help:    "Latency of command dispatch in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})

	var err error
	if commands, err = register(reg, commands); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return mediator.MiddlewareFunc(func(ctx context.Context, cmd any, next mediator.Next) (any, error) {
		start := time.Now()
		resp, err := next(ctx)

		name := mediator.CommandName(cmd)
		outcome, e := Classify(resp, err)
		commands.WithLabelValues(name, string(outcome), familyLabel(outcome, e)).Inc()
		duration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		return resp, err
	}), nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
