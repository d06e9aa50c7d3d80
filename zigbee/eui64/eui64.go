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

// Package eui64 provides IEEE EUI-64 device address representations and the
// codecs that plug them into secman.Context.
package eui64

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"

	"dirpx.dev/silabs/zigbee/secman"
)

// Size is the width of an EUI-64 in bytes.
const Size = 8

// EUI64 is a device address, most significant byte first (the order in
// which it is printed).
type EUI64 [Size]byte

// ErrInvalid is returned when a textual address cannot be parsed.
var ErrInvalid = errors.New("eui64: invalid address")

var (
	_ encoding.TextMarshaler   = EUI64{}
	_ encoding.TextUnmarshaler = (*EUI64)(nil)

	_ secman.AddressCodec[EUI64]  = Codec{}
	_ secman.AddressCodec[uint64] = Uint64Codec{}
)

// FromUint64 converts an integer address.
func FromUint64(v uint64) EUI64 {
	var e EUI64
	binary.BigEndian.PutUint64(e[:], v)
	return e
}

// Uint64 returns the address as an integer.
func (e EUI64) Uint64() uint64 {
	return binary.BigEndian.Uint64(e[:])
}

// String renders the address as colon-separated hex, e.g.
// "00:0d:6f:00:0a:bc:de:f0".
func (e EUI64) String() string {
	var b strings.Builder
	b.Grow(3*Size - 1)
	for i, c := range e {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(hex.EncodeToString([]byte{c}))
	}
	return b.String()
}

// Parse accepts 16 hex digits, optionally separated by ':' or '-'.
func Parse(s string) (EUI64, error) {
	clean := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(s))
	if len(clean) != 2*Size {
		return EUI64{}, ErrInvalid
	}
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return EUI64{}, ErrInvalid
	}
	return EUI64(raw), nil
}

// MarshalText implements encoding.TextMarshaler.
func (e EUI64) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EUI64) UnmarshalText(text []byte) error {
	v, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Codec is the wire codec for EUI64. The address is sent least significant
// byte first, as Ember stores it.
type Codec struct{}

func (Codec) Size() int { return Size }

func (Codec) Put(dst []byte, a EUI64) {
	for i := 0; i < Size; i++ {
		dst[i] = a[Size-1-i]
	}
}

func (Codec) Get(src []byte) (EUI64, error) {
	var e EUI64
	for i := 0; i < Size; i++ {
		e[i] = src[Size-1-i]
	}
	return e, nil
}

// Uint64Codec is the wire codec for callers that hold the address as a
// uint64. Its wire form is identical to Codec.
type Uint64Codec struct{}

func (Uint64Codec) Size() int { return Size }

func (Uint64Codec) Put(dst []byte, a uint64) {
	binary.LittleEndian.PutUint64(dst, a)
}

func (Uint64Codec) Get(src []byte) (uint64, error) {
	return binary.LittleEndian.Uint64(src), nil
}
