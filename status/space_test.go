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

package status

import (
	"encoding"
	"errors"
	"fmt"
	"testing"
)

func TestSpace_RoundTrip(t *testing.T) {
	for _, sp := range []Space{SpaceGeneric, SpaceWifi, SpaceMask} {
		got, err := DecodeSpace(EncodeSpace(sp))
		if err != nil {
			t.Fatalf("DecodeSpace(EncodeSpace(%s)) unexpected error: %v", sp, err)
		}
		if got != sp {
			t.Fatalf("DecodeSpace(EncodeSpace(%s)) = %s", sp, got)
		}
	}
}

func TestSpace_DecodeInvalid(t *testing.T) {
	for _, code := range []uint32{0x0001, 0x0A00, 0x0B01, 0xFFFF, 0x00010000} {
		_, err := DecodeSpace(code)
		if !errors.Is(err, ErrInvalidSpace) {
			t.Fatalf("DecodeSpace(%#x) err = %v, want ErrInvalidSpace", code, err)
		}
		var ise *InvalidSpaceError
		if !errors.As(err, &ise) || ise.Code != code {
			t.Fatalf("DecodeSpace(%#x) did not preserve the raw value: %v", code, err)
		}
	}
}

func TestSpace_Display(t *testing.T) {
	tests := []struct {
		in    Space
		str   string
		lower string
		upper string
	}{
		{SpaceGeneric, "SlSpaceGeneric", "0x00000000", "0x00000000"},
		{SpaceWifi, "SlSpaceWifi", "0x00000b00", "0x00000B00"},
		{SpaceMask, "SlSpaceMask", "0x0000ff00", "0x0000FF00"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.str {
			t.Fatalf("String() = %q, want %q", got, tt.str)
		}
		if got := fmt.Sprintf("%x", tt.in); got != tt.lower {
			t.Fatalf("%%x = %q, want %q", got, tt.lower)
		}
		if got := fmt.Sprintf("%X", tt.in); got != tt.upper {
			t.Fatalf("%%X = %q, want %q", got, tt.upper)
		}
	}
}

func TestSpaceOf_MatchesCategory(t *testing.T) {
	for _, s := range All() {
		sp, err := SpaceOf(s.Code())
		if err != nil {
			t.Fatalf("SpaceOf(%s) unexpected error: %v", s, err)
		}
		want := SpaceGeneric
		if s.Category() == CategoryWifi {
			want = SpaceWifi
		}
		if sp != want {
			t.Fatalf("SpaceOf(%s) = %s, want %s", s, sp, want)
		}
	}
	if _, err := SpaceOf(0x0C01); err == nil {
		t.Fatalf("SpaceOf(0x0C01) expected error")
	}
}

func TestSpace_Text(t *testing.T) {
	var _ encoding.TextMarshaler = SpaceWifi
	var _ encoding.TextUnmarshaler = (*Space)(nil)

	text, err := SpaceWifi.MarshalText()
	if err != nil || string(text) != "SlSpaceWifi" {
		t.Fatalf("MarshalText() = %q, %v", text, err)
	}
	if _, err := Space(7).MarshalText(); err == nil {
		t.Fatalf("MarshalText() on undefined space must fail")
	}

	for _, in := range []string{"SlSpaceWifi", " wifi ", "0x0B00", "0X0b00", "2816", "02816"} {
		var sp Space
		if err := sp.UnmarshalText([]byte(in)); err != nil {
			t.Fatalf("UnmarshalText(%q) unexpected error: %v", in, err)
		}
		if sp != SpaceWifi {
			t.Fatalf("UnmarshalText(%q) = %s", in, sp)
		}
	}

	var bad Space
	if err := bad.UnmarshalText([]byte("radio")); !errors.Is(err, ErrUnknownName) {
		t.Fatalf("UnmarshalText(radio) err = %v, want ErrUnknownName", err)
	}
	if err := bad.UnmarshalText([]byte("4294967296")); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("UnmarshalText(overflow) err = %v, want ErrInvalidNumber", err)
	}
}
