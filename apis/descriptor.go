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

// ErrorDescriptor describes how one firmware status is exposed: its
// identity plus the transport statuses a mapper resolved for it.
//
// Descriptors are what the CLI prints and what adapter.EncodeDescriptor
// serializes.
type ErrorDescriptor struct {
	// Code is the raw 32-bit firmware code.
	Code uint32 `json:"code" cbor:"1,keyasint"`

	// Name is the display name, e.g. "SlIoTimeout". For unknown codes it is
	// "Unknown(0x0000004a)".
	Name string `json:"name" cbor:"2,keyasint"`

	// Category is the status category, e.g. "Io". Empty for unknown codes.
	Category string `json:"category,omitempty" cbor:"3,keyasint,omitempty"`

	// HTTPStatus is the HTTP status to use. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty" cbor:"4,keyasint,omitempty"`

	// GRPCCode is the gRPC status code (as integer). A value of 0 means
	// "not specified".
	GRPCCode int `json:"grpc_code,omitempty" cbor:"5,keyasint,omitempty"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty" cbor:"6,keyasint,omitempty"`
}
