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
	"io"
)

// KeyType is the list of key types used by the Zigbee security manager.
type KeyType uint8

const (
	// KeyTypeNone is no key type.
	KeyTypeNone KeyType = iota
	// KeyTypeNetwork is the network key used for network payloads. There is
	// only one in storage.
	KeyTypeNetwork
	// KeyTypeTcLink is the Trust Center Link Key. There is only one in
	// storage.
	KeyTypeTcLink
	// KeyTypeTcLinkWithTimeout is a transient Trust Center Link Key used to
	// open joining. Indexed; bounded by available RAM.
	KeyTypeTcLinkWithTimeout
	// KeyTypeAppLink is an application link key. Indexed.
	KeyTypeAppLink
	// KeyTypeZllEncryptionKey is the ZLL encryption key.
	KeyTypeZllEncryptionKey
	// KeyTypeZllPreconfiguredKey is the ZLL pre-configured link key.
	KeyTypeZllPreconfiguredKey
	// KeyTypeGreenPowerProxyTableKey is a GPD key used on a proxy.
	KeyTypeGreenPowerProxyTableKey
	// KeyTypeGreenPowerSinkTableKey is a GPD key used on a sink.
	KeyTypeGreenPowerSinkTableKey
	// KeyTypeInternal is a non-persisted key for one-time hashing inside
	// the stack.
	KeyTypeInternal
)

var keyTypeNames = [...]string{
	KeyTypeNone:                    "None",
	KeyTypeNetwork:                 "Network",
	KeyTypeTcLink:                  "TcLink",
	KeyTypeTcLinkWithTimeout:       "TcLinkWithTimeout",
	KeyTypeAppLink:                 "AppLink",
	KeyTypeZllEncryptionKey:        "ZllEncryptionKey",
	KeyTypeZllPreconfiguredKey:     "ZllPreconfiguredKey",
	KeyTypeGreenPowerProxyTableKey: "GreenPowerProxyTableKey",
	KeyTypeGreenPowerSinkTableKey:  "GreenPowerSinkTableKey",
	KeyTypeInternal:                "Internal",
}

// ParseKeyType validates a raw discriminant.
func ParseKeyType(raw uint8) (KeyType, error) {
	if int(raw) >= len(keyTypeNames) {
		return 0, &InvalidValueError{Type: "KeyType", Value: uint32(raw)}
	}
	return KeyType(raw), nil
}

// Valid reports whether k is a defined key type.
func (k KeyType) Valid() bool {
	return int(k) < len(keyTypeNames)
}

func (k KeyType) String() string {
	if k.Valid() {
		return keyTypeNames[k]
	}
	return fmt.Sprintf("KeyType(%d)", uint8(k))
}

// Format renders %x and %X as two zero-padded digits with a 0x prefix.
func (k KeyType) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x':
		_, _ = fmt.Fprintf(f, "0x%02x", uint8(k))
	case 'X':
		_, _ = fmt.Fprintf(f, "0x%02X", uint8(k))
	case 'd':
		_, _ = fmt.Fprintf(f, "%d", uint8(k))
	default:
		_, _ = io.WriteString(f, k.String())
	}
}
