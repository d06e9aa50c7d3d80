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
	"bytes"
	"encoding"
	"fmt"
	"strconv"
	"strings"
)

// Space is the coarse namespace selected by the upper byte of a code.
//
// Space classifies a different protocol header field than Status and is
// kept out of the Status dispatch table on purpose.
type Space uint32

const (
	SpaceGeneric Space = 0x0000
	SpaceWifi    Space = 0x0B00
	SpaceMask    Space = 0xFF00
)

var spaceNames = map[Space]string{
	SpaceGeneric: "Generic",
	SpaceWifi:    "Wifi",
	SpaceMask:    "Mask",
}

var (
	_ encoding.TextMarshaler   = SpaceGeneric
	_ encoding.TextUnmarshaler = (*Space)(nil)
)

// EncodeSpace returns the wire value of s.
func EncodeSpace(s Space) uint32 {
	return uint32(s)
}

// DecodeSpace maps a raw value to one of the three defined spaces. Any other
// value yields an *InvalidSpaceError carrying code.
func DecodeSpace(code uint32) (Space, error) {
	s := Space(code)
	if _, ok := spaceNames[s]; !ok {
		return 0, &InvalidSpaceError{Code: code}
	}
	return s, nil
}

// SpaceOf classifies the space a status code lives in by masking it with
// SpaceMask. It fails for codes whose upper byte selects no defined space.
func SpaceOf(code uint32) (Space, error) {
	return DecodeSpace(code & uint32(SpaceMask))
}

// Valid reports whether s is a defined space.
func (s Space) Valid() bool {
	_, ok := spaceNames[s]
	return ok
}

// String returns the display name, e.g. "SlSpaceWifi".
func (s Space) String() string {
	return "Sl" + "Space" + nameOf(spaceNames, s)
}

// Format implements fmt.Formatter with the same contract as Status.
func (s Space) Format(f fmt.State, verb rune) {
	format(f, verb, uint32(s), s.String())
}

// MarshalText implements encoding.TextMarshaler. Undefined values fail.
func (s Space) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &InvalidSpaceError{Code: uint32(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseSpace.
func (s *Space) UnmarshalText(text []byte) error {
	parsed, err := ParseSpace(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSpace accepts the display name ("SlSpaceWifi"), the bare name in any
// case ("wifi"), or a numeric literal ("0x0B00", "2816"). Malformed or
// out-of-range numbers yield ErrInvalidNumber.
func ParseSpace(text string) (Space, error) {
	text = strings.TrimSpace(text)
	if n, ok, err := parseNumber(text); ok {
		if err != nil {
			return 0, err
		}
		return DecodeSpace(n)
	}
	name := strings.TrimPrefix(text, "SlSpace")
	for s, n := range spaceNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, text)
}

// parseNumber parses a 32-bit literal: hexadecimal after a 0x or 0X prefix,
// decimal otherwise. Leading zeros do not select octal. ok is false when
// text does not start with a digit and so is not a number at all.
func parseNumber(text string) (n uint32, ok bool, err error) {
	if text == "" || text[0] < '0' || text[0] > '9' {
		return 0, false, nil
	}
	digits, base := text, 10
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		digits, base = text[2:], 16
	}
	v, perr := strconv.ParseUint(digits, base, 32)
	if perr != nil {
		return 0, true, fmt.Errorf("%w %q: %w", ErrInvalidNumber, text, perr)
	}
	return uint32(v), true, nil
}
