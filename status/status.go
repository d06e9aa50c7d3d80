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
	"fmt"
	"io"
	"slices"
	"strings"
)

// Status is a decoded status code.
//
// The interface is sealed: only the category types of this package (Generic,
// State, Alloc, Param, Io, Eeprom, Flash, Mac, Cli, Security, Command, Wifi)
// implement it. Two Status values are equal (==) exactly when they have the
// same category and the same code.
type Status interface {
	fmt.Stringer
	fmt.Formatter

	// Code returns the wire value of the status.
	Code() uint32
	// Category returns the sub-category the status belongs to.
	Category() Category
	// Name returns the variant name without the category tag, e.g. "Busy".
	Name() string
	// Valid reports whether the value is one of the defined codes of its
	// category. Values produced by Decode are always valid.
	Valid() bool

	sealed()
}

// Category identifies the sub-category of a Status.
type Category uint8

const (
	CategoryGeneric Category = iota
	CategoryState
	CategoryAlloc
	CategoryParam
	CategoryIo
	CategoryEeprom
	CategoryFlash
	CategoryMac
	CategoryCli
	CategorySecurity
	CategoryCommand
	CategoryWifi
)

var categoryNames = [...]string{
	CategoryGeneric:  "Generic",
	CategoryState:    "State",
	CategoryAlloc:    "Alloc",
	CategoryParam:    "Param",
	CategoryIo:       "Io",
	CategoryEeprom:   "Eeprom",
	CategoryFlash:    "Flash",
	CategoryMac:      "Mac",
	CategoryCli:      "Cli",
	CategorySecurity: "Security",
	CategoryCommand:  "Command",
	CategoryWifi:     "Wifi",
}

// String returns the category tag used in display names.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Segment returns the lowercase path segment of the category, e.g. "io".
func (c Category) Segment() string {
	return strings.ToLower(c.String())
}

// ParseCategory resolves a category from its tag ("Io") or path segment
// ("io").
func ParseCategory(text string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(text, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: category %q", ErrUnknownName, text)
}

// Range is one entry of the dispatch table: the inclusive code interval
// [Lo, Hi] claimed by Category.
type Range struct {
	Lo       uint32
	Hi       uint32
	Category Category
}

// Contains reports whether code falls inside the range.
func (r Range) Contains(code uint32) bool {
	return code >= r.Lo && code <= r.Hi
}

// String renders the range as "Category[0x...-0x...]".
func (r Range) String() string {
	return fmt.Sprintf("%s[0x%04x-0x%04x]", r.Category, r.Lo, r.Hi)
}

// dispatchEntry binds a range to the validator of its category.
type dispatchEntry struct {
	Range
	decode func(code uint32) (Status, bool)
}

// dispatch is the canonical range table, ordered by code.
var dispatch = [...]dispatchEntry{
	{Range{0x0000, 0x0000, CategoryGeneric}, decoderOf(genericNames)},
	{Range{0x0001, 0x0001, CategoryGeneric}, decoderOf(genericNames)},
	{Range{0x0002, 0x0018, CategoryState}, decoderOf(stateNames)},
	{Range{0x0019, 0x0020, CategoryAlloc}, decoderOf(allocNames)},
	{Range{0x0021, 0x002D, CategoryParam}, decoderOf(paramNames)},
	{Range{0x002E, 0x0037, CategoryIo}, decoderOf(ioNames)},
	{Range{0x0038, 0x0039, CategoryEeprom}, decoderOf(eepromNames)},
	{Range{0x003A, 0x003D, CategoryFlash}, decoderOf(flashNames)},
	{Range{0x003E, 0x0043, CategoryMac}, decoderOf(macNames)},
	{Range{0x0044, 0x0044, CategoryCli}, decoderOf(cliNames)},
	{Range{0x0045, 0x0046, CategorySecurity}, decoderOf(securityNames)},
	{Range{0x0047, 0x0049, CategoryCommand}, decoderOf(commandNames)},
	{Range{0x0B01, 0x0B20, CategoryWifi}, decoderOf(wifiNames)},
}

// decoderOf returns the validator for one category: it accepts exactly the
// codes present in the category's name table.
func decoderOf[T interface {
	~uint32
	Status
}](names map[T]string) func(uint32) (Status, bool) {
	return func(code uint32) (Status, bool) {
		v := T(code)
		if _, ok := names[v]; !ok {
			return nil, false
		}
		return v, true
	}
}

// Encode returns the wire value of s. It never fails.
func Encode(s Status) uint32 {
	return s.Code()
}

// Decode maps a raw code to its Status.
//
// The first range of the dispatch table containing code selects the
// category; the category then rejects codes that fall into gaps of a sparse
// range. Codes outside every range, or inside a gap, yield an
// *InvalidStatusError carrying code.
func Decode(code uint32) (Status, error) {
	for i := range dispatch {
		e := &dispatch[i]
		if !e.Contains(code) {
			continue
		}
		if s, ok := e.decode(code); ok {
			return s, nil
		}
		break
	}
	return nil, &InvalidStatusError{Code: code}
}

// MustDecode is the panic-on-error variant of Decode, intended for tests and
// package-level declarations.
func MustDecode(code uint32) Status {
	s, err := Decode(code)
	if err != nil {
		panic(err)
	}
	return s
}

// Hex returns the full 32-bit zero-padded lowercase hex form of s, e.g.
// "0x0000002f".
func Hex(s Status) string {
	return fmt.Sprintf("0x%08x", s.Code())
}

// Path returns the dotted snake_case path of s, e.g. "io.timeout" or
// "wifi.secure_link_mac_key_error". Flat values have a single segment
// ("ok", "fail").
func Path(s Status) string {
	if s.Category() == CategoryGeneric {
		return snake(s.Name())
	}
	return s.Category().Segment() + "." + snake(s.Name())
}

// Ranges returns a copy of the dispatch table in code order.
func Ranges() []Range {
	out := make([]Range, len(dispatch))
	for i := range dispatch {
		out[i] = dispatch[i].Range
	}
	return out
}

// Categories returns every category in dispatch table order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for i := range dispatch {
		c := dispatch[i].Category
		if len(out) == 0 || out[len(out)-1] != c {
			out = append(out, c)
		}
	}
	return out
}

// All returns every defined status in code order.
func All() []Status {
	return slices.Clone(registry)
}

// registry holds every defined status sorted by code; built in init.
var registry []Status

func display(s Status) string {
	if s.Category() == CategoryGeneric {
		return "Sl" + s.Name()
	}
	return "Sl" + s.Category().String() + s.Name()
}

func nameOf[T ~uint32](names map[T]string, v T) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(0x%08x)", uint32(v))
}

// format implements fmt.Formatter for every code-backed type of the package:
// %x and %X always emit the 0x prefix and 8 digits, %d the decimal code,
// %s and %v the display name.
func format(f fmt.State, verb rune, code uint32, name string) {
	switch verb {
	case 'x':
		_, _ = fmt.Fprintf(f, "0x%08x", code)
	case 'X':
		_, _ = fmt.Fprintf(f, "0x%08X", code)
	case 'd':
		_, _ = fmt.Fprintf(f, "%d", code)
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", name)
	case 's', 'v':
		_, _ = io.WriteString(f, name)
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(%s)", verb, name)
	}
}

// snake converts a CamelCase variant name to snake_case. Runs of capitals are
// kept together ("TxLifetime" -> "tx_lifetime").
func snake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				prevLower := name[i-1] >= 'a' && name[i-1] <= 'z'
				nextLower := i+1 < len(name) && name[i+1] >= 'a' && name[i+1] <= 'z'
				prevUpper := name[i-1] >= 'A' && name[i-1] <= 'Z'
				if prevLower || (prevUpper && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
