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
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeRecordFAR(t *testing.T) {
	rec, err := DecodeRecord(FAR, []byte{0x02, 0x04}, binary.LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := rec.Field("cpu_type"); v.(uint64) != 2 {
		t.Errorf("cpu_type: expected 2, got %v", v)
	}
	if v, _ := rec.Field("stdf_version"); v.(uint64) != 4 {
		t.Errorf("stdf_version: expected 4, got %v", v)
	}
}

func TestDecodeRecordDependentArray(t *testing.T) {
	t.Run("pgr pin indexes sized by pin_count", func(t *testing.T) {
		payload := []byte{
			0x01, 0x00, // group_index
			0x00,       // group_name (empty Cf)
			0x02, 0x00, // pin_count
			0x0A, 0x00, 0x0B, 0x00, // pin_indexes
		}
		rec, err := DecodeRecord(PGR, payload, binary.LittleEndian)
		if err != nil {
			t.Fatal(err)
		}
		v, ok := rec.Field("pin_indexes")
		if !ok {
			t.Fatal("pin_indexes not decoded")
		}
		arr := v.([]any)
		if len(arr) != 2 || arr[0].(uint64) != 10 || arr[1].(uint64) != 11 {
			t.Errorf("unexpected pin_indexes: %#v", arr)
		}
	})

	t.Run("payload exhausted after the count leaves the array unset", func(t *testing.T) {
		// RDR with a payload that ends right after bin_count is read as 0.
		rec, err := DecodeRecord(RDR, []byte{0x00, 0x00}, binary.LittleEndian)
		if err != nil {
			t.Fatal(err)
		}
		// bin_numbers never starts: the cursor is already at end of payload.
		if _, ok := rec.Field("bin_numbers"); ok {
			t.Error("bin_numbers should be unset on a payload exhausted at the field boundary")
		}
	})
}

func TestDecodeRecordTruncation(t *testing.T) {
	t.Run("clean overrun leaves trailing fields unset", func(t *testing.T) {
		// MIR cut off after start_time: everything after is simply absent.
		payload := []byte{
			0x00, 0x00, 0x00, 0x60, // setup_time
			0x00, 0x00, 0x00, 0x61, // start_time
		}
		rec, err := DecodeRecord(MIR, payload, binary.LittleEndian)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := rec.Field("setup_time"); !ok {
			t.Error("setup_time should be decoded")
		}
		if _, ok := rec.Field("lot_id"); ok {
			t.Error("lot_id should be unset after a clean overrun")
		}
	})

	t.Run("mid-field overrun is a decode overrun", func(t *testing.T) {
		// setup_time needs four bytes, only three are present.
		rec, err := DecodeRecord(MIR, []byte{0x00, 0x00, 0x00}, binary.LittleEndian)
		if !errors.Is(err, ErrDecodeOverrun) {
			t.Errorf("expected ErrDecodeOverrun, got %v", err)
		}
		if rec == nil {
			t.Fatal("partial record should still be returned")
		}
	})
}

func TestDecodeRecordMissingSentinels(t *testing.T) {
	t.Run("head and site 255 normalize to nil", func(t *testing.T) {
		payload := []byte{
			0xFF,                   // head_number
			0xFF,                   // site_number
			0x0A, 0x00, 0x00, 0x00, // part_count
		}
		rec, err := DecodeRecord(PCR, payload, binary.LittleEndian)
		if err != nil {
			t.Fatal(err)
		}
		if v, ok := rec.Field("head_number"); !ok || v != nil {
			t.Errorf("head_number: expected nil, got %v (present=%v)", v, ok)
		}
		if v, _ := rec.Field("part_count"); v.(uint64) != 10 {
			t.Errorf("part_count: expected 10, got %v", v)
		}
	})

	t.Run("all-ones u4 counts normalize to nil", func(t *testing.T) {
		payload := []byte{
			0x01, 0x01,
			0x0A, 0x00, 0x00, 0x00, // part_count
			0xFF, 0xFF, 0xFF, 0xFF, // retest_count sentinel
		}
		rec, err := DecodeRecord(PCR, payload, binary.LittleEndian)
		if err != nil {
			t.Fatal(err)
		}
		if v, ok := rec.Field("retest_count"); !ok || v != nil {
			t.Errorf("retest_count: expected nil, got %v", v)
		}
	})
}

func TestDecodeRecordFieldOrder(t *testing.T) {
	payload := []byte{0x02, 0x04}
	rec, err := DecodeRecord(FAR, payload, binary.LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	names := rec.FieldNames()
	if len(names) != 2 || names[0] != "cpu_type" || names[1] != "stdf_version" {
		t.Errorf("unexpected field order: %v", names)
	}
}

func TestTemplateRefsPointBackwards(t *testing.T) {
	// Every Ref must name a field declared earlier in the same template.
	for rt, template := range stdfTemplates {
		seen := make(map[string]bool)
		for _, spec := range template {
			if spec.Ref != "" && !seen[spec.Ref] {
				t.Errorf("%s.%s references %q, which is not declared earlier", rt, spec.Name, spec.Ref)
			}
			seen[spec.Name] = true
		}
	}
}

func TestAtdfSourcesExistInStdfTemplates(t *testing.T) {
	// Every ATDF field's source must name a field of the record's STDF
	// template.
	for rt, template := range atdfTemplates {
		stdfFields := make(map[string]bool)
		for _, spec := range stdfTemplates[rt] {
			stdfFields[spec.Name] = true
		}
		for _, spec := range template {
			for _, name := range spec.Source.Names() {
				if !stdfFields[name] {
					t.Errorf("%s ATDF field %q sources %q, absent from the STDF template", rt, spec.Name, name)
				}
			}
		}
	}
}
