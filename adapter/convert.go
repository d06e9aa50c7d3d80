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

// Package adapter converts silabs errors and statuses into the portable
// shapes of package apis and serializes them.
package adapter

import (
	"fmt"

	"dirpx.dev/silabs"
	"dirpx.dev/silabs/apis"
	"dirpx.dev/silabs/codec"
	"dirpx.dev/silabs/status"
)

// ToDescriptor converts an error together with its resolved transport status
// into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the raw firmware code (even when it did not
// decode), the display name and the concrete transport statuses.
func ToDescriptor(e *silabs.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := describe(e.ErrorCode(), st)
	d.Message = e.Message
	return d
}

// Describe builds the descriptor of a bare status, resolving transport
// statuses with m. A nil m leaves them unspecified.
func Describe(s status.Status, m apis.Mapper) apis.ErrorDescriptor {
	var st apis.Status
	if m != nil {
		st = m.Status(s)
	}
	return describe(status.Encode(s), st)
}

// DescribeCode is Describe for a raw code. Codes that do not decode get an
// "Unknown(0x...)" name, no category and the transport statuses of
// status.Fail.
func DescribeCode(code uint32, m apis.Mapper) apis.ErrorDescriptor {
	s, err := status.Decode(code)
	if err != nil {
		var st apis.Status
		if m != nil {
			st = m.Status(status.Fail)
		}
		return describe(code, st)
	}
	return Describe(s, m)
}

func describe(code uint32, st apis.Status) apis.ErrorDescriptor {
	d := apis.ErrorDescriptor{
		Code:       code,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	if s, err := status.Decode(code); err == nil {
		d.Name = s.String()
		d.Category = s.Category().String()
	} else {
		d.Name = fmt.Sprintf("Unknown(0x%08x)", code)
	}
	return d
}

// ToView converts an error into a public ErrorView. This function performs
// no automatic redaction or filtering; it exposes exactly what the error
// instance contains.
//
// Details come from apis.DetailedError, which *silabs.Error implements. It
// is up to the caller or API layer to decide whether to redact or filter
// sensitive fields.
func ToView(e *silabs.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	d := describe(e.ErrorCode(), apis.Status{})
	v := apis.ErrorView{
		Code:    fmt.Sprintf("0x%08x", d.Code),
		Name:    d.Name,
		Message: e.Message,
	}
	if ds := e.ErrorDetails(); len(ds) > 0 {
		v.Details = ds
	}
	return v
}

// EncodeDescriptor serializes d as deterministic CBOR.
func EncodeDescriptor(d apis.ErrorDescriptor) ([]byte, error) {
	b, err := codec.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("adapter: encode descriptor: %w", err)
	}
	return b, nil
}

// DecodeDescriptor parses the output of EncodeDescriptor.
func DecodeDescriptor(data []byte) (apis.ErrorDescriptor, error) {
	var d apis.ErrorDescriptor
	if err := codec.Unmarshal(data, &d); err != nil {
		return apis.ErrorDescriptor{}, fmt.Errorf("adapter: decode descriptor: %w", err)
	}
	return d, nil
}
