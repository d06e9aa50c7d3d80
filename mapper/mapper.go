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
	"strings"

	"dirpx.dev/silabs/apis"
	"dirpx.dev/silabs/mapper/internal/rangeindex"
	"dirpx.dev/silabs/status"
	"google.golang.org/grpc/codes"
)

// New builds an immutable Mapper from the library defaults plus opts.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultCategoryHTTP {
		b.httpCategory[k] = v
	}
	for k, v := range defaultCategoryGRPC {
		b.grpcCategory[k] = int(v)
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate everything the options touched.
	if err := b.validate(); err != nil {
		return nil, err
	}

	// (4) Compile range rules.
	httpIdx, err := buildIndex("HTTP", b.httpRanges, identity)
	if err != nil {
		return nil, err
	}
	grpcIdx, err := buildIndex("gRPC", b.grpcRanges, toGRPC)
	if err != nil {
		return nil, err
	}

	// (5) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpOverride: freeze(b.httpOverride, identity),
		grpcOverride: freeze(b.grpcOverride, toGRPC),
		httpRanges:   httpIdx,
		grpcRanges:   grpcIdx,
		httpDefault:  freeze(b.httpDefaults, identity),
		grpcDefault:  freeze(b.grpcDefaults, toGRPC),
		httpCategory: freeze(b.httpCategory, identity),
		grpcCategory: freeze(b.grpcCategory, toGRPC),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

func (b *builder) validate() error {
	for _, m := range []map[status.Status]int{b.httpDefaults, b.httpOverride} {
		for s, v := range m {
			if err := validStatusRule(s, v, validHTTP); err != nil {
				return err
			}
		}
	}
	for _, m := range []map[status.Status]int{b.grpcDefaults, b.grpcOverride} {
		for s, v := range m {
			if err := validStatusRule(s, v, validGRPC); err != nil {
				return err
			}
		}
	}
	for c, v := range b.httpCategory {
		if err := validHTTP(v); err != nil {
			return fmt.Errorf("mapper: category %s: %w", c, err)
		}
	}
	for c, v := range b.grpcCategory {
		if err := validGRPC(v); err != nil {
			return fmt.Errorf("mapper: category %s: %w", c, err)
		}
	}
	for _, r := range b.httpRanges {
		if err := validHTTP(r.val); err != nil {
			return fmt.Errorf("mapper: range 0x%04x-0x%04x: %w", r.lo, r.hi, err)
		}
	}
	for _, r := range b.grpcRanges {
		if err := validGRPC(r.val); err != nil {
			return fmt.Errorf("mapper: range 0x%04x-0x%04x: %w", r.lo, r.hi, err)
		}
	}
	if err := validHTTP(b.fallbackHTTP); err != nil {
		return fmt.Errorf("mapper: fallback: %w", err)
	}
	if err := validGRPC(int(b.fallbackGRPC)); err != nil {
		return fmt.Errorf("mapper: fallback: %w", err)
	}
	return nil
}

func validStatusRule(s status.Status, v int, check func(int) error) error {
	if s == nil || !s.Valid() {
		return fmt.Errorf("mapper: rule for undefined status %v", s)
	}
	if err := check(v); err != nil {
		return fmt.Errorf("mapper: status %s: %w", s, err)
	}
	return nil
}

type mapper struct {
	// httpOverride holds explicit HTTP statuses for specific statuses.
	// These take precedence over every other rule.
	httpOverride map[status.Status]int

	// grpcOverride holds explicit gRPC statuses for specific statuses.
	grpcOverride map[status.Status]codes.Code

	// httpRanges resolves HTTP statuses from the raw code; the narrowest
	// containing range wins.
	httpRanges *rangeindex.Index[int]

	// grpcRanges resolves gRPC statuses from the raw code.
	grpcRanges *rangeindex.Index[codes.Code]

	// httpDefault holds the HTTP status for individual statuses.
	httpDefault map[status.Status]int

	// grpcDefault holds the gRPC status for individual statuses.
	grpcDefault map[status.Status]codes.Code

	// httpCategory holds the HTTP status for a whole category.
	httpCategory map[status.Category]int

	// grpcCategory holds the gRPC status for a whole category.
	grpcCategory map[status.Category]codes.Code

	// fallbackHTTP is used when there is no rule at all for a status.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no rule at all for a status.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// Rule sources reported by Explain.
const (
	sourceOverride = "override"
	sourceRange    = "range"
	sourceDefault  = "default"
	sourceCategory = "category"
	sourceFallback = "fallback"
)

// resolveHTTP walks the rule tiers in priority order. span is set only for
// sourceRange.
func (m *mapper) resolveHTTP(s status.Status) (v int, source string, span rangeindex.Span) {
	if s == nil {
		return m.fallbackHTTP, sourceFallback, span
	}
	// 1. Exact override for this status.
	if v, ok := m.httpOverride[s]; ok {
		return v, sourceOverride, span
	}
	// 2. Narrowest range over the raw code.
	if v, ok, sp := m.httpRanges.MatchWithSpan(s.Code()); ok {
		return v, sourceRange, sp
	}
	// 3. Per-status default.
	if v, ok := m.httpDefault[s]; ok {
		return v, sourceDefault, span
	}
	// 4. Per-category default.
	if v, ok := m.httpCategory[s.Category()]; ok {
		return v, sourceCategory, span
	}
	// 5. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP, sourceFallback, span
}

func (m *mapper) resolveGRPC(s status.Status) (v codes.Code, source string, span rangeindex.Span) {
	if s == nil {
		return m.fallbackGRPC, sourceFallback, span
	}
	if v, ok := m.grpcOverride[s]; ok {
		return v, sourceOverride, span
	}
	if v, ok, sp := m.grpcRanges.MatchWithSpan(s.Code()); ok {
		return v, sourceRange, sp
	}
	if v, ok := m.grpcDefault[s]; ok {
		return v, sourceDefault, span
	}
	if v, ok := m.grpcCategory[s.Category()]; ok {
		return v, sourceCategory, span
	}
	return m.fallbackGRPC, sourceFallback, span
}

func (m *mapper) HTTPStatus(s status.Status) int {
	v, _, _ := m.resolveHTTP(s)
	return v
}

func (m *mapper) GRPCStatus(s status.Status) codes.Code {
	v, _, _ := m.resolveGRPC(s)
	return v
}

func (m *mapper) Status(s status.Status) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(s),
		GRPC: m.GRPCStatus(s),
	}
}

// Explain renders which tier resolved s, one line per transport:
//
//	status=SlIoTimeout code=0x0000002f category=Io
//	http: source=range range=0x002e-0x0037 -> 502
//	grpc: source=default -> DeadlineExceeded(4)
func (m *mapper) Explain(s status.Status) string {
	var b strings.Builder
	if s == nil {
		_, _ = fmt.Fprintln(&b, "status=<nil>")
	} else {
		_, _ = fmt.Fprintf(&b, "status=%s code=%x category=%s\n", s, s, s.Category())
	}

	// ---- HTTP ----
	hv, hsrc, hspan := m.resolveHTTP(s)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", hsrc, spanSuffix(hsrc, hspan), hv)

	// ---- gRPC ----
	gv, gsrc, gspan := m.resolveGRPC(s)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)\n", gsrc, spanSuffix(gsrc, gspan), gv, int(gv))

	return strings.TrimSuffix(b.String(), "\n")
}

func spanSuffix(source string, span rangeindex.Span) string {
	if source != sourceRange {
		return ""
	}
	return " range=" + span.String()
}
