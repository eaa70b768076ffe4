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
	"dirpx.dev/dcore/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given code.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given code.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over every other tier.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// Overrides take precedence over every other tier.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPFamily sets the HTTP status used for codes of family f that have
// no per-code default, including numbers outside the registry.
func WithHTTPFamily(f code.Family, http int) Option {
	return func(b *builder) { b.httpFamily[f] = http }
}

// WithGRPCFamily sets the gRPC status used for codes of family f that have
// no per-code default.
func WithGRPCFamily(f code.Family, grpc int) Option {
	return func(b *builder) { b.grpcFamily[f] = grpc }
}

// WithoutDefaults drops the per-code library defaults, leaving resolution to
// overrides, family rules and the fallback.
func WithoutDefaults() Option {
	return func(b *builder) {
		clear(b.httpDefaults)
		clear(b.grpcDefaults)
	}
}

// WithFallback replaces the last-resort statuses (500 / Internal).
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
