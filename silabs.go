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

// Package silabs carries firmware status codes as Go errors.
//
// The status taxonomy itself lives in dirpx.dev/silabs/status and the
// security manager records in dirpx.dev/silabs/zigbee/secman. This package
// adds the rich error type that transport adapters (grpcx, httpx) and the
// mapper consume.
package silabs

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/silabs/apis"
	"dirpx.dev/silabs/status"
)

// Error is a firmware status surfaced as a Go error.
//
// It carries:
//   - Status: the decoded firmware status (required);
//   - Message: human-oriented description (what went wrong);
//   - Details: arbitrary key/value payload (for logging / HTTP body);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Status is the firmware status this error reports. It is never nil for
	// errors built with E or FromCode.
	Status status.Status

	// Message is a human-readable explanation.
	Message string

	// Details is an optional, shallow map of extra fields. The map is
	// treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

// DetailRawCode is the detail key under which FromCode stores a raw code
// that did not decode.
const DetailRawCode = "raw_code"

// E is a convenience constructor for Error.
//
// Usage:
//
//	return silabs.E(status.IoTimeout, "radio did not answer",
//	    silabs.WithDetailOption("port", "/dev/ttyUSB0"),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(s status.Status, msg string, opts ...Option) *Error {
	e := &Error{Status: s, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// FromCode builds an Error from a raw firmware code.
//
// Codes that do not decode are not dropped: the error gets status.Fail, the
// raw value is stored under DetailRawCode and the *status.InvalidStatusError
// becomes the cause, so diagnostics can still show the unmapped code.
func FromCode(code uint32, msg string, opts ...Option) *Error {
	s, err := status.Decode(code)
	if err != nil {
		e := E(status.Fail, msg, opts...)
		return e.WithDetail(DetailRawCode, code).WithCause(err)
	}
	return E(s, msg, opts...)
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<display name> (<hex code>): <message>
//
// e.g. "SlIoTimeout (0x0000002f): radio did not answer".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Status == nil {
		return e.Message
	}
	return fmt.Sprintf("%s (%x): %s", e.Status, e.Status, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorStatus implements apis.StatusError.
func (e *Error) ErrorStatus() status.Status { return e.Status }

// ErrorCode implements apis.CodedError. For errors built by FromCode from
// an undecodable code it returns that raw code: the status is status.Fail,
// DetailRawCode holds the code and the cause chain carries the matching
// *status.InvalidStatusError. A DetailRawCode detail alone never overrides
// the code of the status.
func (e *Error) ErrorCode() uint32 {
	if raw, ok := e.rawCode(); ok {
		return raw
	}
	if e.Status == nil {
		return status.Encode(status.Fail)
	}
	return status.Encode(e.Status)
}

func (e *Error) rawCode() (uint32, bool) {
	if e.Status != status.Fail {
		return 0, false
	}
	raw, ok := e.Details[DetailRawCode].(uint32)
	if !ok {
		return 0, false
	}
	var ise *status.InvalidStatusError
	if !errors.As(e.Cause, &ise) || ise.Code != raw {
		return 0, false
	}
	return raw, true
}

// ErrorDetails implements apis.DetailedError. Each Details entry becomes one
// "extra" detail, ordered by key.
func (e *Error) ErrorDetails() []apis.Detail {
	if len(e.Details) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]apis.Detail, 0, len(keys))
	for _, k := range keys {
		out = append(out, apis.Detail{
			Type:  "extra",
			Field: k,
			Info:  map[string]string{"value": detailValue(e.Details[k])},
		})
	}
	return out
}

func detailValue(v any) string {
	if c, ok := v.(uint32); ok {
		return fmt.Sprintf("0x%08x", c)
	}
	return fmt.Sprint(v)
}

// Is reports whether target is an *Error carrying the same status. This lets
// callers write errors.Is(err, silabs.E(status.IoTimeout, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return t.Status != nil && e.Status == t.Status
}

// WithStatus returns a shallow copy of e with the given Status set.
func (e *Error) WithStatus(s status.Status) *Error {
	cp := *e
	cp.Status = s
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details, kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
