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
	"fmt"
	"maps"

	"google.golang.org/grpc/codes"
)

// maxGRPCCode is the highest canonical gRPC status (Unauthenticated).
const maxGRPCCode = int(codes.Unauthenticated)

// freezeHTTP makes an immutable copy of an HTTP map, normalizing an empty
// map to nil.
func freezeHTTP[K comparable](src map[K]int) map[K]int {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}

// freezeGRPC makes an immutable copy of a gRPC map, converting builder-style
// int values into typed gRPC codes.
func freezeGRPC[K comparable](src map[K]int) map[K]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// validateHTTP reports every status in m outside 100..599.
func validateHTTP[K interface {
	comparable
	fmt.Stringer
}](tier string, m map[K]int) []error {
	var errs []error
	for k, v := range m {
		if v < 100 || v > 599 {
			errs = append(errs, fmt.Errorf("mapper: invalid HTTP %s status %d for %s", tier, v, k))
		}
	}
	return errs
}

// validateGRPC reports every status in m outside the canonical gRPC range.
func validateGRPC[K interface {
	comparable
	fmt.Stringer
}](tier string, m map[K]int) []error {
	var errs []error
	for k, v := range m {
		if v < 0 || v > maxGRPCCode {
			errs = append(errs, fmt.Errorf("mapper: invalid gRPC %s status %d for %s", tier, v, k))
		}
	}
	return errs
}

// grpcName renders a gRPC code the way Explain prints it, e.g. NOT_FOUND(5).
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", upperSnake(c.String()), int(c))
}

// upperSnake turns "NotFound" into "NOT_FOUND" and keeps "OK" as is.
func upperSnake(s string) string {
	out := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				out = append(out, '_')
			}
			out = append(out, ch)
			continue
		}
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}
