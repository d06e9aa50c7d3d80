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

	"dirpx.dev/silabs/mapper/internal/rangeindex"
	"google.golang.org/grpc/codes"
)

// freeze copies src into a fresh map, converting values with conv. Empty
// inputs yield nil so lookups on the frozen snapshot stay cheap.
func freeze[K comparable, V, W any](src map[K]V, conv func(V) W) map[K]W {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]W, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func identity(v int) int { return v }

func toGRPC(v int) codes.Code { return codes.Code(v) }

// buildIndex compiles range rules into an index, validating every rule.
func buildIndex[T any](transport string, rules []rangeRule, conv func(int) T) (*rangeindex.Index[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	x := rangeindex.New[T]()
	for _, r := range rules {
		if err := x.Insert(r.lo, r.hi, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s range 0x%04x-0x%04x: %w", transport, r.lo, r.hi, err)
		}
	}
	return x, nil
}

func validHTTP(v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("invalid HTTP status %d", v)
	}
	return nil
}

func validGRPC(v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("invalid gRPC code %d", v)
	}
	return nil
}
