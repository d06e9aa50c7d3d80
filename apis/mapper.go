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

package apis

import (
	"dirpx.dev/silabs/status"
	"google.golang.org/grpc/codes"
)

// Mapper resolves firmware statuses to transport statuses.
//
// Implementations must be safe for concurrent use.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for s. It never returns 0.
	HTTPStatus(s status.Status) int

	// GRPCStatus returns the gRPC status code for s.
	GRPCStatus(s status.Status) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same matching logic.
	Status(s status.Status) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(s status.Status) string
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
