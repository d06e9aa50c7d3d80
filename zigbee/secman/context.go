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

import "encoding/binary"

// ContextFixedSize is the wire width of a Context without its address:
// key, key index, derived type, multi-network index, flags and PSA
// algorithm permission.
const ContextFixedSize = KeySize + 1 + 1 + 1 + 1 + 4

// AddressCodec supplies the wire form of the device address of a Context.
//
// Size must be constant for a codec. Put writes exactly Size bytes into dst;
// Get reads a value from exactly Size bytes.
type AddressCodec[A any] interface {
	Size() int
	Put(dst []byte, a A)
	Get(src []byte) (A, error)
}

// Context is the context of a Zigbee security manager operation.
//
// The address type A is chosen by the caller together with its
// AddressCodec; Context never interprets it.
type Context[A comparable] struct {
	key                 Key
	keyIndex            uint8
	derivedType         DerivedKeyType
	eui64               A
	multiNetworkIndex   uint8
	flags               Flags
	psaKeyAlgPermission uint32
}

// NewContext creates a Context. The derived type must only carry defined
// bits, all of which fit its one-byte wire slot.
func NewContext[A comparable](
	key Key,
	keyIndex uint8,
	derivedType DerivedKeyType,
	eui64 A,
	multiNetworkIndex uint8,
	flags Flags,
	psaKeyAlgPermission uint32,
) (Context[A], error) {
	if !derivedType.Valid() {
		return Context[A]{}, &InvalidValueError{Type: "DerivedKeyType", Value: uint32(derivedType)}
	}
	return Context[A]{
		key:                 key,
		keyIndex:            keyIndex,
		derivedType:         derivedType,
		eui64:               eui64,
		multiNetworkIndex:   multiNetworkIndex,
		flags:               flags,
		psaKeyAlgPermission: psaKeyAlgPermission,
	}, nil
}

// Key returns the key carried by the context.
func (c Context[A]) Key() Key { return c.key }

// KeyIndex returns the index of the referenced key.
func (c Context[A]) KeyIndex() uint8 { return c.keyIndex }

// DerivedType returns the derivation to perform on the key.
func (c Context[A]) DerivedType() DerivedKeyType { return c.derivedType }

// EUI64 returns the device address associated with the key.
func (c Context[A]) EUI64() A { return c.eui64 }

// MultiNetworkIndex returns the multi-network index.
func (c Context[A]) MultiNetworkIndex() uint8 { return c.multiNetworkIndex }

// Flags returns the flag bitmask.
func (c Context[A]) Flags() Flags { return c.flags }

// PSAKeyAlgPermission returns the algorithm permission for PSA APIs.
func (c Context[A]) PSAKeyAlgPermission() uint32 { return c.psaKeyAlgPermission }

// ContextSize returns the wire width of a Context using ac.
func ContextSize[A any](ac AddressCodec[A]) int {
	return ContextFixedSize + ac.Size()
}

// Append appends the ContextSize(ac)-byte encoding of c to b. The derived
// type occupies a single byte on the wire.
func (c Context[A]) Append(b []byte, ac AddressCodec[A]) []byte {
	b = append(b, c.key[:]...)
	b = append(b, c.keyIndex, uint8(c.derivedType))
	n := len(b)
	b = append(b, make([]byte, ac.Size())...)
	ac.Put(b[n:], c.eui64)
	b = append(b, c.multiNetworkIndex, uint8(c.flags))
	return binary.LittleEndian.AppendUint32(b, c.psaKeyAlgPermission)
}

// Marshal returns the encoding of c.
func (c Context[A]) Marshal(ac AddressCodec[A]) []byte {
	return c.Append(make([]byte, 0, ContextSize(ac)), ac)
}

// DecodeContext decodes the first ContextSize(ac) bytes of b.
//
// The derived type must only carry defined bits. Flags are kept as sent,
// including bits this package does not name.
func DecodeContext[A comparable](b []byte, ac AddressCodec[A]) (Context[A], error) {
	size := ContextSize(ac)
	if err := need("Context", b, size); err != nil {
		return Context[A]{}, err
	}
	key := Key(b[0:KeySize])
	off := KeySize
	keyIndex := b[off]
	derived, err := ParseDerivedKeyType(uint16(b[off+1]))
	if err != nil {
		return Context[A]{}, err
	}
	off += 2
	addr, err := ac.Get(b[off : off+ac.Size()])
	if err != nil {
		return Context[A]{}, err
	}
	off += ac.Size()
	return NewContext(
		key,
		keyIndex,
		derived,
		addr,
		b[off],
		Flags(b[off+1]),
		binary.LittleEndian.Uint32(b[off+2:off+6]),
	)
}
