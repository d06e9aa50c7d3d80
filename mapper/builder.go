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
	"net/http"

	"dirpx.dev/silabs/status"
	"google.golang.org/grpc/codes"
)

type rangeRule struct {
	// lo and hi bound the raw firmware codes the rule covers (inclusive).
	// They are validated when we build the per-transport index.
	lo, hi uint32
	// val is the numeric transport status to apply when this range matches.
	// For HTTP this is the final value; for gRPC we store ints in the builder
	// and convert to codes.Code later.
	val int
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpCategory holds per-category HTTP defaults.
	httpCategory map[status.Category]int
	// grpcCategory holds per-category gRPC defaults as ints; converted to codes.Code in New().
	grpcCategory map[status.Category]int

	// httpDefaults holds per-status HTTP defaults that override library defaults.
	httpDefaults map[status.Status]int
	// grpcDefaults holds per-status gRPC defaults as ints.
	grpcDefaults map[status.Status]int

	// httpOverride holds exact per-status HTTP overrides (higher than everything else).
	httpOverride map[status.Status]int
	// grpcOverride holds exact per-status gRPC overrides as ints.
	grpcOverride map[status.Status]int

	// httpRanges and grpcRanges hold raw code range rules, compiled into a
	// rangeindex in New().
	httpRanges []rangeRule
	grpcRanges []rangeRule

	// global fallbacks used when a status has no rule at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpCategory: make(map[status.Category]int, len(defaultCategoryHTTP)),
		grpcCategory: make(map[status.Category]int, len(defaultCategoryGRPC)),
		httpDefaults: make(map[status.Status]int, len(defaultHTTP)),
		grpcDefaults: make(map[status.Status]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[status.Status]int),
		grpcOverride: make(map[status.Status]int),

		// hard fallbacks if the status was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
