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
	"time"
)

// ApsKeyMetadataSize is the wire width of ApsKeyMetadata.
const ApsKeyMetadataSize = 2 + 4 + 4 + 2

var (
	_ encoding.BinaryMarshaler   = ApsKeyMetadata{}
	_ encoding.BinaryUnmarshaler = (*ApsKeyMetadata)(nil)
)

// ApsKeyMetadata is the metadata of an APS key.
type ApsKeyMetadata struct {
	bitmask              uint16
	outgoingFrameCounter uint32
	incomingFrameCounter uint32
	ttlInSeconds         uint16
}

// NewApsKeyMetadata creates an ApsKeyMetadata.
func NewApsKeyMetadata(bitmask uint16, outgoingFrameCounter, incomingFrameCounter uint32, ttlInSeconds uint16) ApsKeyMetadata {
	return ApsKeyMetadata{
		bitmask:              bitmask,
		outgoingFrameCounter: outgoingFrameCounter,
		incomingFrameCounter: incomingFrameCounter,
		ttlInSeconds:         ttlInSeconds,
	}
}

// Bitmask returns the key struct bitmask.
func (m ApsKeyMetadata) Bitmask() uint16 { return m.bitmask }

// OutgoingFrameCounter returns the outgoing frame counter.
func (m ApsKeyMetadata) OutgoingFrameCounter() uint32 { return m.outgoingFrameCounter }

// IncomingFrameCounter returns the incoming frame counter.
func (m ApsKeyMetadata) IncomingFrameCounter() uint32 { return m.incomingFrameCounter }

// TTLInSeconds returns the raw time-to-live.
func (m ApsKeyMetadata) TTLInSeconds() uint16 { return m.ttlInSeconds }

// TTL returns the time-to-live as whole seconds.
func (m ApsKeyMetadata) TTL() time.Duration {
	return time.Duration(m.ttlInSeconds) * time.Second
}

// Append appends the ApsKeyMetadataSize-byte encoding of m to b.
func (m ApsKeyMetadata) Append(b []byte) []byte {
	b = binary.LittleEndian.AppendUint16(b, m.bitmask)
	b = binary.LittleEndian.AppendUint32(b, m.outgoingFrameCounter)
	b = binary.LittleEndian.AppendUint32(b, m.incomingFrameCounter)
	return binary.LittleEndian.AppendUint16(b, m.ttlInSeconds)
}

// MarshalBinary implements encoding.BinaryMarshaler. It never fails.
func (m ApsKeyMetadata) MarshalBinary() ([]byte, error) {
	return m.Append(make([]byte, 0, ApsKeyMetadataSize)), nil
}

// DecodeApsKeyMetadata decodes the first ApsKeyMetadataSize bytes of b.
func DecodeApsKeyMetadata(b []byte) (ApsKeyMetadata, error) {
	if err := need("ApsKeyMetadata", b, ApsKeyMetadataSize); err != nil {
		return ApsKeyMetadata{}, err
	}
	le := binary.LittleEndian
	return NewApsKeyMetadata(le.Uint16(b[0:2]), le.Uint32(b[2:6]), le.Uint32(b[6:10]), le.Uint16(b[10:12])), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler via
// DecodeApsKeyMetadata.
func (m *ApsKeyMetadata) UnmarshalBinary(b []byte) error {
	v, err := DecodeApsKeyMetadata(b)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
