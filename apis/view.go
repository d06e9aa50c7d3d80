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

// ViewProvider is an error that can render itself as an ErrorView.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is the client-facing shape of an error.
type ErrorView struct {
	// Code is the raw 32-bit firmware code, rendered as "0x%08x".
	Code string `json:"code"`

	// Name is the status display name.
	Name string `json:"name"`

	// Message is the error's own message.
	Message string `json:"message,omitempty"`

	// Details is an optional list of additional details about the error.
	Details []Detail `json:"details,omitempty"`
}
