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
	"encoding/hex"
	"fmt"
)

// KeySize is the width of a Key in bytes.
const KeySize = 16

// Key is an opaque 128-bit key blob.
type Key [KeySize]byte

// KeyFromBytes copies the first KeySize bytes of b into a Key.
func KeyFromBytes(b []byte) (Key, error) {
	var k Key
	if err := need("Key", b, KeySize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// ParseKey decodes a key from 32 hex digits.
func ParseKey(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, fmt.Errorf("secman: parse key: %w", err)
	}
	if len(b) != KeySize {
		return Key{}, fmt.Errorf("secman: parse key: want %d bytes, got %d", KeySize, len(b))
	}
	return Key(b), nil
}

// Hex returns the key material as lowercase hex. Use it deliberately; String
// never prints key material.
func (k Key) Hex() string {
	return hex.EncodeToString(k[:])
}

// String returns a redacted form so keys do not leak into logs.
func (k Key) String() string {
	if k == (Key{}) {
		return "Key(zero)"
	}
	return "Key(redacted)"
}
