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

package secman

import (
	"fmt"
	"strings"
)

// Flags is the security manager context flag bitmask. The raw byte is its
// own wire encoding.
type Flags uint8

const (
	// FlagsNone has no flag set.
	FlagsNone Flags = 0x00

	// FlagKeyIndexIsValid marks the key index of the context as valid. Set
	// by the caller of an export API to search for a key by index; ignored
	// by import APIs.
	FlagKeyIndexIsValid Flags = 0b0000_0001

	// FlagEuiIsValid marks the EUI64 of the context as valid. Set by the
	// caller of an export API to search for a key by EUI64, and by the stack
	// when a search by index finds an entry. Ignored by import APIs.
	FlagEuiIsValid Flags = 0b0000_0010

	// FlagUnconfirmedTransientKey is internal: the transient key being added
	// is an unconfirmed, updated key awaiting a Verify Key Confirm.
	FlagUnconfirmedTransientKey Flags = 0b0000_0100
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagKeyIndexIsValid, "KEY_INDEX_IS_VALID"},
	{FlagEuiIsValid, "EUI_IS_VALID"},
	{FlagUnconfirmedTransientKey, "UNCONFIRMED_TRANSIENT_KEY"},
}

// Contains reports whether every flag of other is set in f.
func (f Flags) Contains(other Flags) bool {
	return f&other == other
}

// Intersects reports whether f and other share at least one flag.
func (f Flags) Intersects(other Flags) bool {
	return f&other != 0
}

// With returns f with other set.
func (f Flags) With(other Flags) Flags {
	return f | other
}

// Without returns f with other cleared.
func (f Flags) Without(other Flags) Flags {
	return f &^ other
}

// String renders the set flags joined by " | ", e.g.
// "KEY_INDEX_IS_VALID | EUI_IS_VALID". Unnamed bits are kept as hex.
func (f Flags) String() string {
	if f == FlagsNone {
		return "NONE"
	}
	var parts []string
	rest := f
	for _, n := range flagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	return strings.Join(parts, " | ")
}
