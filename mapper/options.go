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
	"dirpx.dev/silabs/status"
	"google.golang.org/grpc/codes"
)

// Option adjusts the mapper being built by New.
type Option func(*builder)

// WithHTTPCategoryDefault sets the HTTP status used for every status of
// category c that has no more specific rule.
func WithHTTPCategoryDefault(c status.Category, http int) Option {
	return func(b *builder) { b.httpCategory[c] = http }
}

// WithGRPCCategoryDefault is the gRPC counterpart of WithHTTPCategoryDefault.
func WithGRPCCategoryDefault(c status.Category, grpc int) Option {
	return func(b *builder) { b.grpcCategory[c] = grpc }
}

// WithHTTPDefault replaces the library HTTP default for one status.
func WithHTTPDefault(s status.Status, http int) Option {
	return func(b *builder) { b.httpDefaults[s] = http }
}

// WithGRPCDefault replaces the library gRPC default for one status.
func WithGRPCDefault(s status.Status, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[s] = grpc }
}

// WithHTTPOverride pins the HTTP status of s, beating every other rule.
func WithHTTPOverride(s status.Status, http int) Option {
	return func(b *builder) { b.httpOverride[s] = http }
}

// WithGRPCOverride pins the gRPC status of s, beating every other rule.
func WithGRPCOverride(s status.Status, grpc int) Option {
	return func(b *builder) { b.grpcOverride[s] = grpc }
}

// WithHTTPRange maps every code in [lo, hi] to http. When ranges overlap the
// narrowest one wins.
func WithHTTPRange(lo, hi uint32, http int) Option {
	return func(b *builder) { b.httpRanges = append(b.httpRanges, rangeRule{lo, hi, http}) }
}

// WithGRPCRange is the gRPC counterpart of WithHTTPRange.
func WithGRPCRange(lo, hi uint32, grpc int) Option {
	return func(b *builder) { b.grpcRanges = append(b.grpcRanges, rangeRule{lo, hi, grpc}) }
}

// WithFallback replaces the statuses used when nothing else matches.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
