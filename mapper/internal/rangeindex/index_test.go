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

package rangeindex

import "testing"

func TestInsertAndMatch_Simple(t *testing.T) {
	x := New[int]()
	must(t, x.Insert(0x002E, 0x0037, 502))
	must(t, x.Insert(0x0B01, 0x0B20, 503))

	if v, ok, s := x.MatchWithSpan(0x002F); !ok || v != 502 || s != (Span{0x002E, 0x0037}) {
		t.Fatalf("match 0x2f => ok=%v v=%v s=%v; want ok=true v=502 s=0x002e-0x0037", ok, v, s)
	}
	if v, ok := x.Match(0x0B20); !ok || v != 503 {
		t.Fatalf("match 0x0b20 => ok=%v v=%v; want upper bound inclusive", ok, v)
	}
	if _, ok := x.Match(0x0B21); ok {
		t.Fatal("0x0b21 must not match")
	}
	if _, ok := x.Match(0x002D); ok {
		t.Fatal("0x2d must not match")
	}
}

func TestNarrowestWins(t *testing.T) {
	x := New[int]()
	must(t, x.Insert(0x0000, 0xFFFF, 1))
	must(t, x.Insert(0x0B00, 0x0BFF, 2))
	must(t, x.Insert(0x0B10, 0x0B14, 3))
	must(t, x.Insert(0x0B12, 0x0B12, 4))

	tests := []struct {
		code uint32
		want int
	}{
		{0x0001, 1},
		{0x0B01, 2},
		{0x0B10, 3},
		{0x0B12, 4},
		{0x0B14, 3},
		{0x0B15, 2},
	}
	for _, tt := range tests {
		if v, ok := x.Match(tt.code); !ok || v != tt.want {
			t.Fatalf("Match(0x%04x) = %v,%v; want %v", tt.code, v, ok, tt.want)
		}
	}
}

func TestSameWidth_LowerStartWins(t *testing.T) {
	x := New[string]()
	must(t, x.Insert(0x0010, 0x0020, "upper"))
	must(t, x.Insert(0x0008, 0x0018, "lower"))

	if v, _, s := x.MatchWithSpan(0x0012); v != "lower" || s.Lo != 0x0008 {
		t.Fatalf("overlap of equal width: got %q %v, want lower", v, s)
	}
}

func TestInsert_ReplacesIdentical(t *testing.T) {
	x := New[int]()
	must(t, x.Insert(1, 5, 10))
	must(t, x.Insert(1, 5, 20))
	if x.Len() != 1 {
		t.Fatalf("Len = %d, want 1", x.Len())
	}
	if v, _ := x.Match(3); v != 20 {
		t.Fatalf("value = %d, want 20", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	x := New[int]()
	if err := x.Insert(5, 4, 1); err == nil {
		t.Fatal("lo > hi must be invalid")
	}
	var nilIdx *Index[int]
	if err := nilIdx.Insert(0, 1, 1); err == nil {
		t.Fatal("nil index insert must fail")
	}
	if _, ok := nilIdx.Match(0); ok {
		t.Fatal("nil index must not match")
	}
	if nilIdx.Len() != 0 {
		t.Fatal("nil index Len must be 0")
	}
}

func TestSpan_String(t *testing.T) {
	if got := (Span{0x0B00, 0x0BFF}).String(); got != "0x0b00-0x0bff" {
		t.Fatalf("String() = %q", got)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
