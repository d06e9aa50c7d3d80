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

// Package mapper provides deterministic, immutable mappings from firmware
// statuses (dirpx.dev/silabs/status) to transport-level statuses for HTTP
// and gRPC.
//
// # Overview
//
// Devices report failures as 32-bit codes that decode to a status.Status.
// Services in front of those devices (HTTP handlers, gRPC servers) need to
// turn a status into concrete transport codes. Package mapper does that in a
// way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per status or category;
//   - range-aware: callers can add rules for raw code intervals;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the status;
//  2. narrowest range rule containing the raw code;
//  3. per-status default (library or user-adjusted);
//  4. per-category default (library or user-adjusted);
//  5. global fallback (500 / codes.Internal).
//
// Range rules are inclusive. For example:
//
//	WithHTTPRange(0x0B00, 0x0BFF, http.StatusBadGateway)
//	WithHTTPRange(0x0B10, 0x0B14, http.StatusForbidden) // secure link
//
// The narrower range wins.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(status.IoTimeout, http.StatusRequestTimeout),
//	    mapper.WithGRPCRange(0x0B10, 0x0B14, int(codes.PermissionDenied)),
//	)
//	if err != nil {
//	    // undefined status, bad range, out-of-range code, etc.
//	}
//
//	st := m.Status(status.WifiSecureLinkMacKeyError)
//	// st.HTTP == 502, st.GRPC == codes.PermissionDenied
//
// Rules can also come from a YAML file via LoadConfig.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a status was resolved,
// including which tier matched and, for ranges, which interval was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes to the caller's maps or slices.
package mapper
