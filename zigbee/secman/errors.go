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
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer is matched (errors.Is) by every *ShortBufferError.
	ErrShortBuffer = errors.New("secman: short buffer")

	// ErrInvalidValue is matched (errors.Is) by every *InvalidValueError.
	ErrInvalidValue = errors.New("secman: invalid value")
)

// ShortBufferError reports a decode buffer shorter than the record width.
type ShortBufferError struct {
	Record string
	Want   int
	Got    int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("secman: %s needs %d bytes, got %d", e.Record, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrShortBuffer) hold.
func (e *ShortBufferError) Is(target error) bool {
	return target == ErrShortBuffer
}

// InvalidValueError reports a raw discriminant or field value outside the
// defined set of Type. Value is the offending raw value, unchanged.
type InvalidValueError struct {
	Type  string
	Value uint32
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("secman: invalid %s value %#x", e.Type, e.Value)
}

// Is makes errors.Is(err, ErrInvalidValue) hold.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
