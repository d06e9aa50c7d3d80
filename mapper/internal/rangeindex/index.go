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

// Package rangeindex stores values keyed by inclusive uint32 code ranges and
// resolves a code to the narrowest range that contains it.
package rangeindex

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidRange is returned when inserting a range whose low bound exceeds
// its high bound.
var ErrInvalidRange = errors.New("rangeindex: invalid range")

// Span is an inclusive code interval [Lo, Hi].
type Span struct {
	Lo uint32
	Hi uint32
}

// Contains reports whether code lies inside s.
func (s Span) Contains(code uint32) bool { return code >= s.Lo && code <= s.Hi }

// Width returns the number of codes covered minus one, so a single-code
// span has width 0.
func (s Span) Width() uint32 { return s.Hi - s.Lo }

// String renders the span as "0x0000-0x00ff".
func (s Span) String() string { return fmt.Sprintf("0x%04x-0x%04x", s.Lo, s.Hi) }

type entry[T any] struct {
	span Span
	val  T
}

// Index maps code ranges to values. The zero value is not usable; call New.
//
// Entries are kept ordered narrowest first (then by Lo), so Match returns on
// the first containing entry. Ranges may overlap; inserting an identical span
// twice replaces the earlier value.
type Index[T any] struct {
	entries []entry[T]
}

// New returns an empty Index.
func New[T any]() *Index[T] {
	return &Index[T]{}
}

// Len returns the number of stored ranges.
func (x *Index[T]) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Insert stores val for [lo, hi].
func (x *Index[T]) Insert(lo, hi uint32, val T) error {
	if x == nil || lo > hi {
		return ErrInvalidRange
	}
	s := Span{Lo: lo, Hi: hi}
	i, found := slices.BinarySearchFunc(x.entries, s, compareSpan[T])
	if found {
		x.entries[i].val = val
		return nil
	}
	x.entries = slices.Insert(x.entries, i, entry[T]{span: s, val: val})
	return nil
}

// Match returns the value of the narrowest range containing code.
func (x *Index[T]) Match(code uint32) (T, bool) {
	v, ok, _ := x.MatchWithSpan(code)
	return v, ok
}

// MatchWithSpan is Match that also reports the matched span, for Explain.
func (x *Index[T]) MatchWithSpan(code uint32) (T, bool, Span) {
	var zero T
	if x == nil {
		return zero, false, Span{}
	}
	for _, e := range x.entries {
		if e.span.Contains(code) {
			return e.val, true, e.span
		}
	}
	return zero, false, Span{}
}

func compareSpan[T any](e entry[T], s Span) int {
	switch {
	case e.span.Width() != s.Width():
		if e.span.Width() < s.Width() {
			return -1
		}
		return 1
	case e.span.Lo != s.Lo:
		if e.span.Lo < s.Lo {
			return -1
		}
		return 1
	}
	return 0
}
