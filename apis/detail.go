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

// Detail is one structured detail attached to an error view.
type Detail struct {
	// Type is a short classifier, e.g. "field", "device", "raw".
	Type string `json:"type,omitempty" cbor:"1,keyasint,omitempty"`

	// Field carries the logical path to the failing input, if any, e.g.
	// "context.flags".
	Field string `json:"field,omitempty" cbor:"2,keyasint,omitempty"`

	// Reason is a short explanation, e.g. "not_boolean".
	Reason string `json:"reason,omitempty" cbor:"3,keyasint,omitempty"`

	// Info carries extra string key/values that survive JSON, CBOR and proto
	// round trips.
	Info map[string]string `json:"info,omitempty" cbor:"4,keyasint,omitempty"`
}
