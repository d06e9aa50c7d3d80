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

package secman_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"dirpx.dev/silabs/zigbee/eui64"
	"dirpx.dev/silabs/zigbee/secman"
)

func TestNetworkKeyInfo_Wire(t *testing.T) {
	n := secman.NewNetworkKeyInfo(true, false, 3, 7, 42)
	want := []byte{0x01, 0x00, 0x03, 0x07, 0x2A, 0x00, 0x00, 0x00}

	got, err := n.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("MarshalBinary = % x, want % x", got, want)
	}
	if len(got) != secman.NetworkKeyInfoSize {
		t.Fatalf("width = %d, want %d", len(got), secman.NetworkKeyInfoSize)
	}

	back, err := secman.DecodeNetworkKeyInfo(got)
	if err != nil {
		t.Fatalf("Decode unexpected error: %v", err)
	}
	if back != n {
		t.Fatalf("Decode = %+v, want %+v", back, n)
	}
	if !back.NetworkKeySet() || back.AlternateNetworkKeySet() ||
		back.NetworkKeySequenceNumber() != 3 || back.AltNetworkKeySequenceNumber() != 7 ||
		back.NetworkKeyFrameCounter() != 42 {
		t.Fatalf("accessors mismatch: %+v", back)
	}
}

func TestNetworkKeyInfo_RoundTrip(t *testing.T) {
	tests := []secman.NetworkKeyInfo{
		secman.NewNetworkKeyInfo(false, false, 0, 0, 0),
		secman.NewNetworkKeyInfo(true, true, 0xFF, 0xFE, 0xFFFFFFFF),
		secman.NewNetworkKeyInfo(false, true, 1, 2, 0x01020304),
	}
	for _, n := range tests {
		var back secman.NetworkKeyInfo
		if err := back.UnmarshalBinary(n.Append(nil)); err != nil {
			t.Fatalf("UnmarshalBinary(%+v) unexpected error: %v", n, err)
		}
		if back != n {
			t.Fatalf("round trip = %+v, want %+v", back, n)
		}
	}
}

func TestNetworkKeyInfo_Bool(t *testing.T) {
	_, err := secman.DecodeNetworkKeyInfo([]byte{0x02, 0x00, 0, 0, 0, 0, 0, 0})
	if !errors.Is(err, secman.ErrInvalidValue) {
		t.Fatalf("non-canonical bool err = %v, want ErrInvalidValue", err)
	}
	var ive *secman.InvalidValueError
	if !errors.As(err, &ive) || ive.Type != "bool" || ive.Value != 2 {
		t.Fatalf("error does not carry the raw value: %v", err)
	}
}

func TestApsKeyMetadata_Wire(t *testing.T) {
	m := secman.NewApsKeyMetadata(0x0102, 0x03040506, 0x0708090A, 300)
	want := []byte{
		0x02, 0x01,
		0x06, 0x05, 0x04, 0x03,
		0x0A, 0x09, 0x08, 0x07,
		0x2C, 0x01,
	}
	got, _ := m.MarshalBinary()
	if !bytes.Equal(got, want) {
		t.Fatalf("MarshalBinary = % x, want % x", got, want)
	}

	back, err := secman.DecodeApsKeyMetadata(got)
	if err != nil {
		t.Fatalf("Decode unexpected error: %v", err)
	}
	if back != m {
		t.Fatalf("Decode = %+v, want %+v", back, m)
	}
	if back.TTL() != 5*time.Minute {
		t.Fatalf("TTL() = %v, want 5m", back.TTL())
	}
	if back.Bitmask() != 0x0102 || back.OutgoingFrameCounter() != 0x03040506 ||
		back.IncomingFrameCounter() != 0x0708090A || back.TTLInSeconds() != 300 {
		t.Fatalf("accessors mismatch: %+v", back)
	}
}

func TestContext_RoundTrip(t *testing.T) {
	key, err := secman.ParseKey("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	addr := eui64.FromUint64(0x000D6F000ABCDEF0)
	c, err := secman.NewContext(key, 4,
		secman.DerivedTransportKey.Or(secman.DerivedTcHashedLinkKey),
		addr, 1, secman.FlagKeyIndexIsValid|secman.FlagEuiIsValid, 0xDEADBEEF)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	wire := c.Marshal(eui64.Codec{})
	if len(wire) != 32 || len(wire) != secman.ContextSize[eui64.EUI64](eui64.Codec{}) {
		t.Fatalf("width = %d, want 32", len(wire))
	}
	wantTail := []byte{
		0x04, 0x11,
		0xF0, 0xDE, 0xBC, 0x0A, 0x00, 0x6F, 0x0D, 0x00,
		0x01, 0x03,
		0xEF, 0xBE, 0xAD, 0xDE,
	}
	if !bytes.Equal(wire[:16], key[:]) || !bytes.Equal(wire[16:], wantTail) {
		t.Fatalf("wire = % x", wire)
	}

	back, err := secman.DecodeContext(wire, eui64.Codec{})
	if err != nil {
		t.Fatalf("DecodeContext unexpected error: %v", err)
	}
	if back != c {
		t.Fatalf("DecodeContext = %+v, want %+v", back, c)
	}
	if !back.Flags().Contains(secman.FlagEuiIsValid) || back.EUI64() != addr {
		t.Fatalf("accessors mismatch: %+v", back)
	}

	// The integer representation shares the wire form.
	asInt, err := secman.DecodeContext(wire, eui64.Uint64Codec{})
	if err != nil {
		t.Fatalf("DecodeContext(uint64) unexpected error: %v", err)
	}
	if asInt.EUI64() != addr.Uint64() {
		t.Fatalf("uint64 address = %#x, want %#x", asInt.EUI64(), addr.Uint64())
	}
	if !bytes.Equal(asInt.Marshal(eui64.Uint64Codec{}), wire) {
		t.Fatalf("uint64 codec re-encodes differently")
	}
}

func TestNewContext_RejectsUndefinedDerivedBits(t *testing.T) {
	for _, d := range []secman.DerivedKeyType{0x0020, 0x0100, 0x0101} {
		_, err := secman.NewContext(secman.Key{}, 0, d, eui64.EUI64{}, 0, secman.FlagsNone, 0)
		var ive *secman.InvalidValueError
		if !errors.As(err, &ive) || ive.Type != "DerivedKeyType" || ive.Value != uint32(d) {
			t.Fatalf("NewContext(%#x) err = %v, want DerivedKeyType %#x", uint16(d), err, uint16(d))
		}
	}
}

func TestContext_RejectsUndefinedDerivedBits(t *testing.T) {
	c, err := secman.NewContext(secman.Key{}, 0, secman.DerivedNone, eui64.EUI64{}, 0, secman.FlagsNone, 0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	wire := c.Marshal(eui64.Codec{})
	wire[17] = 0x20
	_, err = secman.DecodeContext(wire, eui64.Codec{})
	var ive *secman.InvalidValueError
	if !errors.As(err, &ive) || ive.Type != "DerivedKeyType" || ive.Value != 0x20 {
		t.Fatalf("DecodeContext err = %v, want DerivedKeyType 0x20", err)
	}
}

func TestDecode_ShortBuffer(t *testing.T) {
	ctxSize := secman.ContextSize[eui64.EUI64](eui64.Codec{})
	tests := []struct {
		name   string
		size   int
		decode func([]byte) error
	}{
		{"NetworkKeyInfo", secman.NetworkKeyInfoSize, func(b []byte) error {
			_, err := secman.DecodeNetworkKeyInfo(b)
			return err
		}},
		{"ApsKeyMetadata", secman.ApsKeyMetadataSize, func(b []byte) error {
			_, err := secman.DecodeApsKeyMetadata(b)
			return err
		}},
		{"Context", ctxSize, func(b []byte) error {
			_, err := secman.DecodeContext(b, eui64.Codec{})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(make([]byte, tt.size-1))
			if !errors.Is(err, secman.ErrShortBuffer) {
				t.Fatalf("decode(%d bytes) err = %v, want ErrShortBuffer", tt.size-1, err)
			}
			var sbe *secman.ShortBufferError
			if !errors.As(err, &sbe) || sbe.Want != tt.size || sbe.Got != tt.size-1 || sbe.Record != tt.name {
				t.Fatalf("ShortBufferError = %+v", sbe)
			}
			if err := tt.decode(nil); !errors.Is(err, secman.ErrShortBuffer) {
				t.Fatalf("decode(nil) err = %v, want ErrShortBuffer", err)
			}
		})
	}
}

func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	n := secman.NewNetworkKeyInfo(true, true, 9, 8, 7)
	buf := append(n.Append(nil), 0xAA, 0xBB)
	back, err := secman.DecodeNetworkKeyInfo(buf)
	if err != nil || back != n {
		t.Fatalf("Decode with trailer = %+v, %v", back, err)
	}
	if buf[len(buf)-2] != 0xAA || len(buf) != secman.NetworkKeyInfoSize+2 {
		t.Fatalf("decode must not touch trailing bytes")
	}
}

func TestAppend_PreservesPrefix(t *testing.T) {
	m := secman.NewApsKeyMetadata(1, 2, 3, 4)
	out := m.Append([]byte{0xFF})
	if out[0] != 0xFF || len(out) != 1+secman.ApsKeyMetadataSize {
		t.Fatalf("Append = % x", out)
	}
}
