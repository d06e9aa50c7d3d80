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

// Package secman implements the value types of the Zigbee security manager
// and their fixed-layout wire encoding.
//
// Every record is encoded little-endian, fields in declaration order, with no
// padding and no length prefix:
//
//	NetworkKeyInfo  bool, bool, u8, u8, u32                = 8 bytes
//	ApsKeyMetadata  u16, u32, u32, u16                     = 12 bytes
//	Context         key[16], u8, u8, address, u8, u8, u32  = 24 bytes + address
//
// Encoding never fails and always emits exactly the record width. Decoding
// reads exactly the record width from the front of the buffer and never
// consumes trailing bytes; framing belongs to the caller. A buffer that is too
// short yields *ShortBufferError, an out-of-domain field yields
// *InvalidValueError; decoding never panics.
//
// The device address of a Context is generic. Its representation and wire
// form are supplied by an AddressCodec, see package
// dirpx.dev/silabs/zigbee/eui64 for the standard EUI64 codecs.
//
// Keys are opaque byte blobs; this package performs no cryptography.
package secman
