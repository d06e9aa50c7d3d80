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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func TestDecode_RoundTripAll(t *testing.T) {
	all := All()
	if len(all) != 2+23+8+13+10+2+4+6+1+2+3+21 {
		t.Fatalf("All() returned %d statuses", len(all))
	}
	for _, s := range all {
		got, err := Decode(Encode(s))
		if err != nil {
			t.Fatalf("Decode(Encode(%s)) unexpected error: %v", s, err)
		}
		if got != s {
			t.Fatalf("Decode(Encode(%s)) = %s, want %s", s, got, s)
		}
		if !got.Valid() {
			t.Fatalf("%s: decoded value reports !Valid()", s)
		}
	}
}

func TestDecode_Known(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		want Status
	}{
		{"ok", 0x0000, Ok},
		{"fail", 0x0001, Fail},
		{"state first", 0x0002, StateInvalid},
		{"state last", 0x0018, StateNoBeacons},
		{"alloc", 0x001B, AllocStatusEmpty},
		{"param last", 0x002D, ParamAlreadyExists},
		{"io timeout", 0x002F, IoTimeout},
		{"eeprom", 0x0039, EepromStackVersionMismatch},
		{"flash", 0x003D, FlashEraseFailed},
		{"mac", 0x0040, MacIndirectTimeout},
		{"cli", 0x0044, CliStorageNvmOpenError},
		{"security", 0x0046, SecurityDecryptError},
		{"command", 0x0049, CommandIncomplete},
		{"wifi first", 0x0B01, WifiInvalidKey},
		{"wifi last", 0x0B20, WifiTxLifetimeExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.code)
			if err != nil {
				t.Fatalf("Decode(%#x) unexpected error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Fatalf("Decode(%#x) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code uint32
	}{
		{"just past command", 0x004A},
		{"gap before wifi", 0x0100},
		{"wifi space base", 0x0B00},
		{"wifi sparse gap", 0x0B06},
		{"wifi sparse gap 2", 0x0B0A},
		{"wifi sparse gap 3", 0x0B17},
		{"just past wifi", 0x0B21},
		{"mask", 0xFF00},
		{"max", 0xFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.code)
			if err == nil {
				t.Fatalf("Decode(%#x) = %v, want error", tt.code, got)
			}
			if got != nil {
				t.Fatalf("Decode(%#x) on error must return nil, got %v", tt.code, got)
			}
			if !errors.Is(err, ErrInvalidStatus) {
				t.Fatalf("errors.Is(%v, ErrInvalidStatus) = false", err)
			}
			var ise *InvalidStatusError
			if !errors.As(err, &ise) {
				t.Fatalf("error %T is not *InvalidStatusError", err)
			}
			if ise.Code != tt.code {
				t.Fatalf("InvalidStatusError.Code = %#x, want %#x", ise.Code, tt.code)
			}
		})
	}
}

func TestDispatch_DisjointAndContaining(t *testing.T) {
	if err := validateDispatch(dispatch[:], All()); err != nil {
		t.Fatalf("validateDispatch: %v", err)
	}

	ranges := Ranges()
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Lo <= ranges[i-1].Hi {
			t.Fatalf("range %s overlaps %s", ranges[i], ranges[i-1])
		}
	}

	// Every code between range boundaries belongs to at most one range, and
	// every code outside all ranges is rejected.
	for code := uint32(0); code <= 0x0C00; code++ {
		claimed := 0
		for _, r := range ranges {
			if r.Contains(code) {
				claimed++
			}
		}
		if claimed > 1 {
			t.Fatalf("code %#x claimed by %d ranges", code, claimed)
		}
		if claimed == 0 {
			if _, err := Decode(code); err == nil {
				t.Fatalf("code %#x outside every range decoded", code)
			}
		}
	}
}

func TestValidateDispatch_RejectsBrokenTables(t *testing.T) {
	indexOf := func(c Category) int {
		for i := range dispatch {
			if dispatch[i].Category == c {
				return i
			}
		}
		t.Fatalf("no range for %s", c)
		return -1
	}
	io, wifi := indexOf(CategoryIo), indexOf(CategoryWifi)

	tests := []struct {
		name   string
		mutate func([]dispatchEntry) []dispatchEntry
		want   string
	}{
		{"overlap", func(tb []dispatchEntry) []dispatchEntry {
			tb[io].Lo = tb[io-1].Hi
			return tb
		}, "overlaps"},
		{"inverted", func(tb []dispatchEntry) []dispatchEntry {
			tb[io].Lo, tb[io].Hi = tb[io].Hi, tb[io].Lo
			return tb
		}, "lo > hi"},
		{"missing range", func(tb []dispatchEntry) []dispatchEntry {
			return slices.Delete(tb, wifi, wifi+1)
		}, "outside every range"},
		{"wrong category", func(tb []dispatchEntry) []dispatchEntry {
			tb[io].Category = CategoryMac
			return tb
		}, "lies in"},
		{"wrong decoder", func(tb []dispatchEntry) []dispatchEntry {
			tb[io].decode = decoderOf(macNames)
			return tb
		}, "does not round-trip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tt.mutate(slices.Clone(dispatch[:]))
			err := validateDispatch(table, All())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("validateDispatch err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestRanges_ReturnsCopy(t *testing.T) {
	r := Ranges()
	r[0].Hi = 0xFFFF
	if Ranges()[0].Hi != 0x0000 {
		t.Fatalf("Ranges() leaked internal table")
	}
}

func TestCategories_Order(t *testing.T) {
	want := []Category{
		CategoryGeneric, CategoryState, CategoryAlloc, CategoryParam, CategoryIo,
		CategoryEeprom, CategoryFlash, CategoryMac, CategoryCli, CategorySecurity,
		CategoryCommand, CategoryWifi,
	}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Status
		want string
	}{
		{Ok, "SlOk"},
		{Fail, "SlFail"},
		{StateBusy, "SlStateBusy"},
		{IoTimeout, "SlIoTimeout"},
		{AllocStatusFull, "SlAllocStatusFull"},
		{WifiUnsupportedMessageID, "SlWifiUnsupportedMessageId"},
		{State(0x1234), "SlStateUnknown(0x00001234)"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
		if got := fmt.Sprint(tt.in); got != tt.want {
			t.Fatalf("Sprint() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormat_Hex(t *testing.T) {
	tests := []struct {
		in    Status
		lower string
		upper string
	}{
		{Ok, "0x00000000", "0x00000000"},
		{Fail, "0x00000001", "0x00000001"},
		{IoTimeout, "0x0000002f", "0x0000002F"},
		{WifiTxLifetimeExceeded, "0x00000b20", "0x00000B20"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf("%x", tt.in); got != tt.lower {
			t.Fatalf("%%x of %s = %q, want %q", tt.in, got, tt.lower)
		}
		if got := fmt.Sprintf("%X", tt.in); got != tt.upper {
			t.Fatalf("%%X of %s = %q, want %q", tt.in, got, tt.upper)
		}
		if got := Hex(tt.in); got != tt.lower {
			t.Fatalf("Hex(%s) = %q, want %q", tt.in, got, tt.lower)
		}
		if len(tt.lower) != 10 {
			t.Fatalf("hex width for %s is %d, want 10", tt.in, len(tt.lower))
		}
	}
	if got := fmt.Sprintf("%d", IoTimeout); got != "47" {
		t.Fatalf("%%d = %q, want 47", got)
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		in   Status
		want string
	}{
		{Ok, "ok"},
		{StateNotReady, "state.not_ready"},
		{IoTimeout, "io.timeout"},
		{WifiSecureLinkMacKeyError, "wifi.secure_link_mac_key_error"},
		{WifiUnsupportedMessageID, "wifi.unsupported_message_id"},
		{CliStorageNvmOpenError, "cli.storage_nvm_open_error"},
	}
	for _, tt := range tests {
		if got := Path(tt.in); got != tt.want {
			t.Fatalf("Path(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"SlIoTimeout", IoTimeout},
		{"io.timeout", IoTimeout},
		{"  State.Not-Ready ", StateNotReady},
		{"0x2f", IoTimeout},
		{"47", IoTimeout},
		{"047", IoTimeout},
		{"0047", IoTimeout},
		{"0X2F", IoTimeout},
		{"0", Ok},
		{"0x0B1C", WifiConnectionTimeout},
		{"ok", Ok},
		{"SlFail", Fail},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("io.nope"); !errors.Is(err, ErrUnknownName) {
		t.Fatalf("Parse(unknown name) err = %v, want ErrUnknownName", err)
	}
	if _, err := Parse("0x4a"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("Parse(unknown code) err = %v, want ErrInvalidStatus", err)
	}
}

func TestParse_InvalidNumber(t *testing.T) {
	tests := []struct {
		in       string
		outRange bool
	}{
		{"4294967296", true},
		{"0x100000000", true},
		{"0b101", false},
		{"0o57", false},
		{"1_0", false},
		{"0x", false},
		{"0xzz", false},
		{"47abc", false},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("Parse(%q) err = %v, want ErrInvalidNumber", tt.in, err)
		}
		if got := errors.Is(err, strconv.ErrRange); got != tt.outRange {
			t.Fatalf("Parse(%q) range error = %v, want %v", tt.in, got, tt.outRange)
		}
	}
}

func TestParse_EveryNameAndPath(t *testing.T) {
	for _, s := range All() {
		for _, text := range []string{s.String(), Path(s), Hex(s)} {
			got, err := Parse(text)
			if err != nil || got != s {
				t.Fatalf("Parse(%q) = %v, %v; want %v", text, got, err, s)
			}
		}
	}
}

func TestMustDecode_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustDecode should panic on invalid input")
		}
	}()
	_ = MustDecode(0x004A)
}

func TestValid_UndefinedValue(t *testing.T) {
	if Wifi(0x0B06).Valid() {
		t.Fatalf("Wifi gap reported as valid")
	}
	if Encode(Wifi(0x0B06)) != 0x0B06 {
		t.Fatalf("Encode must be total")
	}
}

func BenchmarkDecode(b *testing.B) {
	codes := []uint32{0x0000, 0x002F, 0x0049, 0x0B1C, 0x004A}
	for i := 0; i < b.N; i++ {
		_, _ = Decode(codes[i%len(codes)])
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		for _, text := range []string{c.String(), c.Segment()} {
			got, err := ParseCategory(text)
			if err != nil || got != c {
				t.Fatalf("ParseCategory(%q) = %v, %v; want %v", text, got, err, c)
			}
		}
	}
	if _, err := ParseCategory("radio"); !errors.Is(err, ErrUnknownName) {
		t.Fatalf("ParseCategory(radio) err = %v, want ErrUnknownName", err)
	}
}
