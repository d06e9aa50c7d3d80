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
	"slices"
	"strings"
)

// byName indexes every defined status by display name and by path.
var byName map[string]Status

func init() {
	registry = collect()
	if err := validateDispatch(dispatch[:], registry); err != nil {
		panic("status: " + err.Error())
	}

	byName = make(map[string]Status, 2*len(registry))
	for _, s := range registry {
		for _, key := range []string{s.String(), Path(s)} {
			if prev, dup := byName[key]; dup {
				panic(fmt.Sprintf("status: name %q used by both %#x and %#x", key, prev, s))
			}
			byName[key] = s
		}
	}
}

// validateDispatch checks the invariants of a range table against the
// statuses it must serve:
//
//   - every range is well formed (Lo <= Hi);
//   - ranges are sorted and pairwise disjoint;
//   - every status lies inside a range of its category and decodes back to
//     itself through that range.
func validateDispatch(table []dispatchEntry, statuses []Status) error {
	for i := range table {
		r := table[i].Range
		if r.Lo > r.Hi {
			return fmt.Errorf("range %s: lo > hi", r)
		}
		if i > 0 && r.Lo <= table[i-1].Hi {
			return fmt.Errorf("range %s overlaps %s", r, table[i-1].Range)
		}
	}
	for _, s := range statuses {
		e, ok := entryOf(table, s.Code())
		if !ok {
			return fmt.Errorf("%s (0x%08x) is outside every range", s, s.Code())
		}
		if e.Category != s.Category() {
			return fmt.Errorf("%s (0x%08x) lies in %s", s, s.Code(), e.Range)
		}
		if got, ok := e.decode(s.Code()); !ok || got != s {
			return fmt.Errorf("%s (0x%08x) does not round-trip", s, s.Code())
		}
	}
	return nil
}

// entryOf returns the first entry of table containing code.
func entryOf(table []dispatchEntry, code uint32) (*dispatchEntry, bool) {
	for i := range table {
		if table[i].Contains(code) {
			return &table[i], true
		}
	}
	return nil, false
}

// collect gathers every defined status from the name tables, sorted by code.
func collect() []Status {
	var out []Status
	out = appendNames(out, genericNames)
	out = appendNames(out, stateNames)
	out = appendNames(out, allocNames)
	out = appendNames(out, paramNames)
	out = appendNames(out, ioNames)
	out = appendNames(out, eepromNames)
	out = appendNames(out, flashNames)
	out = appendNames(out, macNames)
	out = appendNames(out, cliNames)
	out = appendNames(out, securityNames)
	out = appendNames(out, commandNames)
	out = appendNames(out, wifiNames)
	slices.SortFunc(out, func(a, b Status) int {
		switch {
		case a.Code() < b.Code():
			return -1
		case a.Code() > b.Code():
			return 1
		}
		return 0
	})
	return out
}

func appendNames[T interface {
	~uint32
	Status
}](dst []Status, names map[T]string) []Status {
	for v := range names {
		dst = append(dst, v)
	}
	return dst
}

// Parse resolves text to a Status. It accepts:
//
//   - the display name, e.g. "SlIoTimeout";
//   - the dotted path, case-insensitive, with '-' read as '_', e.g.
//     "io.timeout" or "Wifi.Connection-Timeout";
//   - a decimal or 0x-prefixed numeric code, e.g. "0x2f" or "47"; a
//     leading zero is still decimal, so "047" is 47.
//
// Numeric input goes through Decode, so unknown codes yield an
// *InvalidStatusError. Malformed numbers or values beyond 32 bits yield
// ErrInvalidNumber; unknown names yield ErrUnknownName.
func Parse(text string) (Status, error) {
	text = strings.TrimSpace(text)
	if n, ok, err := parseNumber(text); ok {
		if err != nil {
			return nil, err
		}
		return Decode(n)
	}
	if s, ok := byName[text]; ok {
		return s, nil
	}
	if s, ok := byName[normalizePath(text)]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownName, text)
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(text string) Status {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

func normalizePath(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", ".")
	return s
}
