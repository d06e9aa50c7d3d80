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

package status

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus is matched (errors.Is) by every *InvalidStatusError.
	ErrInvalidStatus = errors.New("status: invalid status")

	// ErrInvalidSpace is matched (errors.Is) by every *InvalidSpaceError.
	ErrInvalidSpace = errors.New("status: invalid space")

	// ErrUnknownName is returned by Parse and ParseSpace when the text is
	// neither a known name nor a number.
	ErrUnknownName = errors.New("status: unknown name")

	// ErrInvalidNumber is returned by Parse and ParseSpace for text that
	// starts with a digit but is not a valid 32-bit literal.
	ErrInvalidNumber = errors.New("status: invalid number")
)

// InvalidStatusError reports a raw code that does not map to any defined
// Status. Code is the offending value, unchanged.
type InvalidStatusError struct {
	Code uint32
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("status: invalid status 0x%08x", e.Code)
}

// Is makes errors.Is(err, ErrInvalidStatus) hold.
func (e *InvalidStatusError) Is(target error) bool {
	return target == ErrInvalidStatus
}

// InvalidSpaceError reports a raw value that is not a defined Space.
type InvalidSpaceError struct {
	Code uint32
}

func (e *InvalidSpaceError) Error() string {
	return fmt.Sprintf("status: invalid space 0x%08x", e.Code)
}

// Is makes errors.Is(err, ErrInvalidSpace) hold.
func (e *InvalidSpaceError) Is(target error) bool {
	return target == ErrInvalidSpace
}
