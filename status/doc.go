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

// Package status provides the canonical numeric status-code taxonomy shared
// by the firmware subsystems, and the Space namespace classifier.
//
// A status is a flat 32-bit code on the wire. In Go it is a Status value: a
// sealed sum type whose variants are the flat values Ok and Fail plus one
// named integer type per sub-category:
//
//   - State, Alloc, Param, Io, Eeprom, Flash, Mac, Cli, Security, Command
//     (Generic space, 0x0002..0x0049);
//   - Wifi (Wifi space, 0x0B01..0x0B20, sparse).
//
// Encode is total: every constructible Status carries its own code. Decode is
// partial and performs a range dispatch over an ordered table of disjoint
// code ranges; the first range containing the code delegates to that
// category's validator. Unknown codes are reported as *InvalidStatusError
// carrying the raw value, never dropped:
//
//	s, err := status.Decode(raw)
//	if err != nil {
//	    // errors.Is(err, status.ErrInvalidStatus) == true
//	    // err.(*status.InvalidStatusError).Code == raw
//	}
//	fmt.Printf("%s %x\n", s, s) // SlIoTimeout 0x0000002f
//
// The dispatch table is checked for disjointness and containment when the
// package is initialized, so adding a range that overlaps an existing one
// fails fast instead of silently shadowing codes.
//
// Space is a separate enumeration that classifies the namespace selected by
// the upper byte of a code. It never participates in Status decoding.
package status
