/*
Copyright 2024 The stdf2atdf Authors.

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

package stdf

import (
	"strings"
	"testing"
)

// bits8 renders a byte as the 8-wide binary string the decoder produces for
// Bit-typed fields.
func bits8(b uint8) string {
	s := ""
	for i := 7; i >= 0; i-- {
		if b&(1<<i) != 0 {
			s += "1"
		} else {
			s += "0"
		}
	}
	return s
}

func TestPassFailFlagParametric(t *testing.T) {
	t.Run("clean pass", func(t *testing.T) {
		v := passFailFlagParametric([]any{bits8(0x00), bits8(0x00)})
		if v != "P" {
			t.Errorf("expected P, got %v", v)
		}
	})

	t.Run("pass with alarm", func(t *testing.T) {
		v := passFailFlagParametric([]any{bits8(0x00), bits8(0x20)})
		if v != "A" {
			t.Errorf("expected A, got %v", v)
		}
	})

	t.Run("bit 7 alone is a fail", func(t *testing.T) {
		v := passFailFlagParametric([]any{bits8(0x80), bits8(0x00)})
		if v != "F" {
			t.Errorf("expected F, got %v", v)
		}
	})

	t.Run("bit 6 set, bit 7 clear is none", func(t *testing.T) {
		// bit 6 set means "result invalid": with bit 7 clear the flag is
		// indeterminate and renders as none.
		v := passFailFlagParametric([]any{bits8(0x40), bits8(0x00)})
		if v != nil {
			t.Errorf("expected nil, got %v", v)
		}
	})

	t.Run("law: P iff test_flg&0xC0==0 and parm_flg&0x20==0", func(t *testing.T) {
		for tf := 0; tf < 256; tf++ {
			for _, pf := range []int{0x00, 0x20, 0x1F, 0x3F} {
				v := passFailFlagParametric([]any{bits8(uint8(tf)), bits8(uint8(pf))})
				wantP := tf&0xC0 == 0 && pf&0x20 == 0
				if wantP != (v == "P") {
					t.Fatalf("test_flg=%#02x parm_flg=%#02x: got %v", tf, pf, v)
				}
			}
		}
	})
}

func TestAlarmFlagsParametric(t *testing.T) {
	t.Run("no bits set is none", func(t *testing.T) {
		v := alarmFlagsParametric([]any{bits8(0x00), bits8(0x00)})
		if v != nil {
			t.Errorf("expected nil, got %v", v)
		}
	})

	t.Run("bit 2 of test_flg is U", func(t *testing.T) {
		v := alarmFlagsParametric([]any{bits8(0x04), bits8(0x00)})
		if v != "U" {
			t.Errorf("expected U, got %v", v)
		}
	})

	t.Run("letters come out sorted", func(t *testing.T) {
		// test_flg bits 0,5 -> A,X; parm_flg bits 0,4 -> S,L.
		v := alarmFlagsParametric([]any{bits8(0x21), bits8(0x11)})
		if v != "ALSX" {
			t.Errorf("expected ALSX, got %v", v)
		}
	})

	t.Run("law: empty iff test_flg&0x3D==0 and parm_flg&0x1F==0", func(t *testing.T) {
		for tf := 0; tf < 256; tf++ {
			v := alarmFlagsParametric([]any{bits8(uint8(tf)), bits8(0x00)})
			wantEmpty := tf&0x3D == 0
			if wantEmpty != (v == nil) {
				t.Fatalf("test_flg=%#02x: got %v", tf, v)
			}
			if s, ok := v.(string); ok {
				if !isSortedSubset(s, "ADHLNOSTUX") {
					t.Fatalf("test_flg=%#02x: %q is not a sorted subset of ADHLNOSTUX", tf, s)
				}
			}
		}
	})
}

func isSortedSubset(s, alphabet string) bool {
	last := -1
	for _, c := range s {
		idx := strings.IndexRune(alphabet, c)
		if idx <= last {
			return false
		}
		last = idx
	}
	return true
}

func TestLimitCompare(t *testing.T) {
	cases := []struct {
		opt  uint8
		want any
	}{
		{0x00, nil},
		{0x40, "L"},
		{0x80, "H"},
		{0xC0, "LH"},
	}
	for _, tc := range cases {
		if v := limitCompare([]any{bits8(tc.opt)}); v != tc.want {
			t.Errorf("opt_flag=%#02x: expected %v, got %v", tc.opt, tc.want, v)
		}
	}
}

func TestPassFailFlagFunctional(t *testing.T) {
	if v := passFailFlagFunctional([]any{bits8(0x00)}); v != "P" {
		t.Errorf("expected P, got %v", v)
	}
	if v := passFailFlagFunctional([]any{bits8(0x80)}); v != "F" {
		t.Errorf("expected F, got %v", v)
	}
	if v := passFailFlagFunctional([]any{bits8(0x40)}); v != "F" {
		t.Errorf("expected F, got %v", v)
	}
}

func TestRelativeAddressHex(t *testing.T) {
	if v := relativeAddressHex([]any{uint64(0xBEEF)}); v != "beef" {
		t.Errorf("expected beef, got %v", v)
	}
	if v := relativeAddressHex([]any{nil}); v != nil {
		t.Errorf("expected nil for a missing input, got %v", v)
	}
	if v := relativeAddressHex([]any{"not an int"}); v != nil {
		t.Errorf("expected nil for a non-integer input, got %v", v)
	}
}

func TestPartFlagCodes(t *testing.T) {
	t.Run("pass fail code", func(t *testing.T) {
		if v := passFailCodePart([]any{bits8(0x00)}); v != "P" {
			t.Errorf("expected P, got %v", v)
		}
		if v := passFailCodePart([]any{bits8(0x08)}); v != "F" {
			t.Errorf("bit 3: expected F, got %v", v)
		}
		if v := passFailCodePart([]any{bits8(0x10)}); v != "F" {
			t.Errorf("bit 4: expected F, got %v", v)
		}
	})

	t.Run("retest code", func(t *testing.T) {
		cases := []struct {
			flg  uint8
			want any
		}{
			{0b00, nil},
			{0b01, "I"},
			{0b10, "C"},
			{0b11, nil},
		}
		for _, tc := range cases {
			if v := retestCodePart([]any{bits8(tc.flg)}); v != tc.want {
				t.Errorf("part_flg=%#02b: expected %v, got %v", tc.flg, tc.want, v)
			}
		}
	})

	t.Run("abort code", func(t *testing.T) {
		if v := abortCodePart([]any{bits8(0x04)}); v != "Y" {
			t.Errorf("expected Y, got %v", v)
		}
		if v := abortCodePart([]any{bits8(0x00)}); v != nil {
			t.Errorf("expected nil, got %v", v)
		}
	})

	t.Run("prr retest scenario", func(t *testing.T) {
		flg := bits8(0b00000001)
		if v := retestCodePart([]any{flg}); v != "I" {
			t.Errorf("retest_code: expected I, got %v", v)
		}
		if v := abortCodePart([]any{flg}); v != nil {
			t.Errorf("abort_code: expected nil, got %v", v)
		}
		if v := passFailCodePart([]any{flg}); v != "P" {
			t.Errorf("pass_fail_code: expected P, got %v", v)
		}
	})
}

func TestHeadSiteNumber(t *testing.T) {
	if v := headSiteNumber([]any{uint64(255)}); v != nil {
		t.Errorf("255 should map to nil, got %v", v)
	}
	for _, x := range []uint64{0, 1, 17, 254} {
		if v := headSiteNumber([]any{x}); v != x {
			t.Errorf("%d should pass through, got %v", x, v)
		}
	}
}

func TestRadixArray(t *testing.T) {
	if v := radixArray([]any{[]any{uint64(0), uint64(0), uint64(0)}}); v != nil {
		t.Errorf("all-zero radixes should be nil, got %v", v)
	}
	if v := radixArray([]any{[]any{uint64(2), uint64(10), uint64(16)}}); v != "B,D,H" {
		t.Errorf("expected B,D,H, got %v", v)
	}
	if v := radixArray([]any{[]any{uint64(8), uint64(20)}}); v != "O,S" {
		t.Errorf("expected O,S, got %v", v)
	}
}

func TestModeArray(t *testing.T) {
	v := modeArray([]any{[]any{uint64(255), uint64(16)}})
	if v != "ff,10" {
		t.Errorf("expected ff,10, got %v", v)
	}
	if v := modeArray([]any{[]any{}}); v != nil {
		t.Errorf("empty array should be nil, got %v", v)
	}
}

func TestPinStatePair(t *testing.T) {
	t.Run("pairwise join", func(t *testing.T) {
		left := []any{[]string{"1 ", "0 "}}
		right := []any{[]string{"1 ", "1 "}}
		v := pinStatePair([]any{left, right})
		if v != "11,01" {
			t.Errorf("expected 11,01, got %v", v)
		}
	})

	t.Run("one side absent", func(t *testing.T) {
		left := []any{[]string{"H", "L"}}
		v := pinStatePair([]any{left, nil})
		if v != "H,L" {
			t.Errorf("expected H,L, got %v", v)
		}
	})

	t.Run("groups join with a slash", func(t *testing.T) {
		left := []any{[]string{"1"}, []string{"0"}}
		right := []any{[]string{"0"}, []string{"1"}}
		v := pinStatePair([]any{left, right})
		if v != "10/01" {
			t.Errorf("expected 10/01, got %v", v)
		}
	})

	t.Run("both sides absent", func(t *testing.T) {
		if v := pinStatePair([]any{nil, nil}); v != nil {
			t.Errorf("expected nil, got %v", v)
		}
	})
}

func TestGenericDataJoin(t *testing.T) {
	v := genericDataJoin([]any{[]any{uint64(1), "two", int64(-3)}})
	if v != "1|two|-3" {
		t.Errorf("expected 1|two|-3, got %v", v)
	}
}

func TestDefaultTransform(t *testing.T) {
	if v := defaultTransform([]any{"x"}); v != "x" {
		t.Errorf("single value should pass through, got %v", v)
	}
	if v := defaultTransform([]any{nil}); v != nil {
		t.Errorf("nil should pass through, got %v", v)
	}
	if v := defaultTransform([]any{uint64(1), "b"}); v != "1,b" {
		t.Errorf("tuples comma-join, got %v", v)
	}
}

func TestFARConstants(t *testing.T) {
	dft := lookupTransform(FAR, "data_file_type")
	if v := dft(nil); v != "A" {
		t.Errorf("data_file_type: expected A, got %v", v)
	}
	av := lookupTransform(FAR, "atdf_version")
	if v := av(nil); v != int64(2) {
		t.Errorf("atdf_version: expected 2, got %v", v)
	}
}
