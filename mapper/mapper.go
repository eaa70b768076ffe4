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

package mapper

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/dcore/apis"
	"dirpx.dev/dcore/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (per code and per family).
//  2. Apply user-provided options (defaults, overrides, family rules, fallback).
//  3. Validate every status: HTTP must be 100..599, gRPC a canonical code.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// All invalid statuses are reported together in one joined error.
func New(opts ...Option) (apis.Mapper, error) {
	// (1) Seed.
	b := newBuilder()

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	var errs []error
	errs = append(errs, validateHTTP("default", b.httpDefaults)...)
	errs = append(errs, validateHTTP("override", b.httpOverride)...)
	errs = append(errs, validateHTTP("family", b.httpFamily)...)
	errs = append(errs, validateGRPC("default", b.grpcDefaults)...)
	errs = append(errs, validateGRPC("override", b.grpcOverride)...)
	errs = append(errs, validateGRPC("family", b.grpcFamily)...)
	if b.fallbackHTTP < 100 || b.fallbackHTTP > 599 {
		errs = append(errs, fmt.Errorf("mapper: invalid HTTP fallback status %d", b.fallbackHTTP))
	}
	if b.fallbackGRPC < 0 || b.fallbackGRPC > maxGRPCCode {
		errs = append(errs, fmt.Errorf("mapper: invalid gRPC fallback status %d", b.fallbackGRPC))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// (4) Freeze everything into a read-only snapshot.
	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpFamily:   freezeHTTP(b.httpFamily),
		grpcFamily:   freezeGRPC(b.grpcFamily),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}, nil
}

// mapper is an immutable mapper implementation that combines per-code
// overrides, per-code defaults and per-family defaults. Lookups are a few
// map reads and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over every other tier.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// httpFamily resolves codes without a per-code entry by family.
	httpFamily map[code.Family]int

	// grpcFamily resolves codes without a per-code entry by family.
	grpcFamily map[code.Family]codes.Code

	// fallbackHTTP is used when neither the code nor its family is mapped.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when neither the code nor its family is mapped.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// tier names reported by Explain.
const (
	sourceOverride = "override"
	sourceDefault  = "default"
	sourceFamily   = "family"
	sourceFallback = "fallback"
)

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code default (library or user overridden);
//  3. per-family default, the family being derived from the number;
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(c code.Code) int {
	v, _ := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	v, _ := m.resolveGRPC(c)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

func (m *mapper) resolveHTTP(c code.Code) (int, string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, sourceOverride
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, sourceDefault
	}
	if v, ok := m.httpFamily[c.Family()]; ok {
		return v, sourceFamily
	}
	return m.fallbackHTTP, sourceFallback
}

func (m *mapper) resolveGRPC(c code.Code) (codes.Code, string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, sourceOverride
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v, sourceDefault
	}
	if v, ok := m.grpcFamily[c.Family()]; ok {
		return v, sourceFamily
	}
	return m.fallbackGRPC, sourceFallback
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, family or fallback).
//
// Example output:
//
//	code=INF_DB_TIMEOUT number=205 family=INFRASTRUCTURE_ERROR
//	http: source=default -> 504
//	grpc: source=default -> DEADLINE_EXCEEDED(4)
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%s number=%d family=%s\n", c, c.Number(), c.Family())

	h, hsrc := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, h)

	g, gsrc := m.resolveGRPC(c)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", gsrc, grpcName(g))

	return b.String()
}
