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

import "dirpx.dev/silabs/status"

// StatusError is an error that reports a decoded firmware status.
type StatusError interface {
	error

	// ErrorStatus returns the firmware status. It MUST NOT return nil;
	// errors without a better status report status.Fail.
	ErrorStatus() status.Status
}

// CodedError is an error that reports the raw 32-bit firmware code.
//
// For decodable statuses this equals status.Encode(ErrorStatus()). Errors
// built from an unknown code return that code unchanged, so callers can
// still log what the device actually sent.
type CodedError interface {
	error

	ErrorCode() uint32
}

// DetailedError exposes structured details of the error. May return nil.
type DetailedError interface {
	error

	ErrorDetails() []Detail
}

// CausedError exposes the underlying error that triggered this error, if any.
type CausedError interface {
	error

	Cause() error
}
