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

// DerivedKeyType selects the derivation applied to a key during Zigbee
// crypto operations.
//
// Values are single bits. Compound derivations are expressed by OR-ing two
// values; the stack only supports combining the key-transport, key-load or
// verify-key hashes with TcSwapOutKey or TcHashedLinkKey.
type DerivedKeyType uint16

const (
	// DerivedNone performs no derivation.
	DerivedNone DerivedKeyType = 0x0000
	// DerivedTransportKey performs the Key-Transport-Key hash.
	DerivedTransportKey DerivedKeyType = 0x0001
	// DerivedLoadKey performs the Key-Load-Key hash.
	DerivedLoadKey DerivedKeyType = 0x0002
	// DerivedVerifyKey performs the Verify Key hash.
	DerivedVerifyKey DerivedKeyType = 0x0004
	// DerivedTcSwapOutKey performs a simple AES hash of the key for TC backup.
	DerivedTcSwapOutKey DerivedKeyType = 0x0008
	// DerivedTcHashedLinkKey hashes the root key against the EUI64 of the
	// context, for a TC using hashed link keys.
	DerivedTcHashedLinkKey DerivedKeyType = 0x0010

	derivedAll = DerivedTransportKey | DerivedLoadKey | DerivedVerifyKey |
		DerivedTcSwapOutKey | DerivedTcHashedLinkKey
)

var derivedNames = []struct {
	bit  DerivedKeyType
	name string
}{
	{DerivedTransportKey, "TransportKey"},
	{DerivedLoadKey, "LoadKey"},
	{DerivedVerifyKey, "VerifyKey"},
	{DerivedTcSwapOutKey, "TcSwapOutKey"},
	{DerivedTcHashedLinkKey, "TcHashedLinkKey"},
}

// ParseDerivedKeyType validates a raw value. Any OR-combination of the
// defined bits is accepted; a value carrying an undefined bit is rejected.
func ParseDerivedKeyType(raw uint16) (DerivedKeyType, error) {
	d := DerivedKeyType(raw)
	if !d.Valid() {
		return 0, &InvalidValueError{Type: "DerivedKeyType", Value: uint32(raw)}
	}
	return d, nil
}

// Valid reports whether d only carries defined bits.
func (d DerivedKeyType) Valid() bool {
	return d&^derivedAll == 0
}

// Or combines two derivations.
func (d DerivedKeyType) Or(other DerivedKeyType) DerivedKeyType {
	return d | other
}

// Contains reports whether every bit of other is set in d. DerivedNone is
// contained in every value.
func (d DerivedKeyType) Contains(other DerivedKeyType) bool {
	return d&other == other
}

// String joins the names of the set bits with "|", e.g.
// "TransportKey|TcHashedLinkKey".
func (d DerivedKeyType) String() string {
	if d == DerivedNone {
		return "None"
	}
	var parts []string
	rest := d
	for _, n := range derivedNames {
		if d&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}
