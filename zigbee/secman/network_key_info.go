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
	"encoding"
	"encoding/binary"
)

// NetworkKeyInfoSize is the wire width of NetworkKeyInfo.
const NetworkKeyInfoSize = 1 + 1 + 1 + 1 + 4

var (
	_ encoding.BinaryMarshaler   = NetworkKeyInfo{}
	_ encoding.BinaryUnmarshaler = (*NetworkKeyInfo)(nil)
)

// NetworkKeyInfo is the metadata of the current and alternate network keys.
type NetworkKeyInfo struct {
	networkKeySet               bool
	alternateNetworkKeySet      bool
	networkKeySequenceNumber    uint8
	altNetworkKeySequenceNumber uint8
	networkKeyFrameCounter      uint32
}

// NewNetworkKeyInfo creates a NetworkKeyInfo.
func NewNetworkKeyInfo(
	networkKeySet bool,
	alternateNetworkKeySet bool,
	networkKeySequenceNumber uint8,
	altNetworkKeySequenceNumber uint8,
	networkKeyFrameCounter uint32,
) NetworkKeyInfo {
	return NetworkKeyInfo{
		networkKeySet:               networkKeySet,
		alternateNetworkKeySet:      alternateNetworkKeySet,
		networkKeySequenceNumber:    networkKeySequenceNumber,
		altNetworkKeySequenceNumber: altNetworkKeySequenceNumber,
		networkKeyFrameCounter:      networkKeyFrameCounter,
	}
}

// NetworkKeySet reports whether the network key is set.
func (n NetworkKeyInfo) NetworkKeySet() bool { return n.networkKeySet }

// AlternateNetworkKeySet reports whether the alternate network key is set.
func (n NetworkKeyInfo) AlternateNetworkKeySet() bool { return n.alternateNetworkKeySet }

// NetworkKeySequenceNumber returns the network key sequence number.
func (n NetworkKeyInfo) NetworkKeySequenceNumber() uint8 { return n.networkKeySequenceNumber }

// AltNetworkKeySequenceNumber returns the alternate network key sequence number.
func (n NetworkKeyInfo) AltNetworkKeySequenceNumber() uint8 { return n.altNetworkKeySequenceNumber }

// NetworkKeyFrameCounter returns the network key frame counter.
func (n NetworkKeyInfo) NetworkKeyFrameCounter() uint32 { return n.networkKeyFrameCounter }

// Append appends the NetworkKeyInfoSize-byte encoding of n to b.
func (n NetworkKeyInfo) Append(b []byte) []byte {
	b = appendBool(b, n.networkKeySet)
	b = appendBool(b, n.alternateNetworkKeySet)
	b = append(b, n.networkKeySequenceNumber, n.altNetworkKeySequenceNumber)
	return binary.LittleEndian.AppendUint32(b, n.networkKeyFrameCounter)
}

// MarshalBinary implements encoding.BinaryMarshaler. It never fails.
func (n NetworkKeyInfo) MarshalBinary() ([]byte, error) {
	return n.Append(make([]byte, 0, NetworkKeyInfoSize)), nil
}

// DecodeNetworkKeyInfo decodes the first NetworkKeyInfoSize bytes of b.
// Booleans must be encoded as 0 or 1.
func DecodeNetworkKeyInfo(b []byte) (NetworkKeyInfo, error) {
	if err := need("NetworkKeyInfo", b, NetworkKeyInfoSize); err != nil {
		return NetworkKeyInfo{}, err
	}
	set, err := readBool(b[0])
	if err != nil {
		return NetworkKeyInfo{}, err
	}
	altSet, err := readBool(b[1])
	if err != nil {
		return NetworkKeyInfo{}, err
	}
	return NewNetworkKeyInfo(set, altSet, b[2], b[3], binary.LittleEndian.Uint32(b[4:8])), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler via
// DecodeNetworkKeyInfo. n is left untouched on error.
func (n *NetworkKeyInfo) UnmarshalBinary(b []byte) error {
	v, err := DecodeNetworkKeyInfo(b)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
