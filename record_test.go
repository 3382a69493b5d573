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

import "testing"

func TestFieldMapOrder(t *testing.T) {
	m := newFieldMap(4)
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", nil)
	m.Set("a", 3) // overwrite keeps position

	keys := m.Keys()
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Errorf("unexpected key order: %v", keys)
	}
	if v, _ := m.Get("a"); v != 3 {
		t.Errorf("overwrite lost: %v", v)
	}
	if v, ok := m.Get("c"); !ok || v != nil {
		t.Errorf("nil value should still be present: %v %v", v, ok)
	}
}

func TestAtdfRecordClone(t *testing.T) {
	rec := NewAtdfRecord(MIR)
	rec.Set("lot_id", "L1")

	clone := rec.Clone()
	clone.Set("lot_id", "L2")
	clone.Set("extra", 1)

	if v, _ := rec.Field("lot_id"); v != "L1" {
		t.Errorf("mutating the clone changed the original: %v", v)
	}
	if _, ok := rec.Field("extra"); ok {
		t.Error("clone's new key leaked into the original")
	}
}

func TestRecordCollection(t *testing.T) {
	coll := NewRecordCollection()

	for i := 0; i < 3; i++ {
		rec := NewAtdfRecord(PIR)
		rec.Set("site_number", uint64(i))
		coll.Append(rec)
	}

	recs := coll.Records(PIR)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i, rec := range recs {
		if v, _ := rec.Field("site_number"); v.(uint64) != uint64(i) {
			t.Errorf("read order not preserved at %d: %v", i, v)
		}
	}

	latest, ok := coll.Latest(PIR)
	if !ok {
		t.Fatal("expected a latest PIR")
	}
	if v, _ := latest.Field("site_number"); v.(uint64) != 2 {
		t.Errorf("latest is not the last appended: %v", v)
	}

	if _, ok := coll.Latest(WIR); ok {
		t.Error("empty type should have no latest record")
	}
}

func TestRecordTypeFor(t *testing.T) {
	cases := []struct {
		typ, sub uint8
		want     RecordType
	}{
		{0, 10, FAR},
		{1, 10, MIR},
		{5, 20, PRR},
		{15, 10, PTR},
		{50, 10, GDR},
	}
	for _, tc := range cases {
		rt, ok := RecordTypeFor(tc.typ, tc.sub)
		if !ok || rt != tc.want {
			t.Errorf("(%d,%d): expected %s, got %s (ok=%v)", tc.typ, tc.sub, tc.want, rt, ok)
		}
	}

	if _, ok := RecordTypeFor(99, 99); ok {
		t.Error("(99,99) should be unknown")
	}
}

func TestRecordTypesCoverTemplates(t *testing.T) {
	for _, rt := range RecordTypes() {
		if _, ok := stdfTemplates[rt]; !ok {
			t.Errorf("%s has no STDF template", rt)
		}
		if _, ok := atdfTemplates[rt]; !ok {
			t.Errorf("%s has no ATDF template", rt)
		}
		if rt.FullName() == "" {
			t.Errorf("%s has no full name", rt)
		}
	}
}
