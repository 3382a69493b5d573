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

// fieldMap is an insertion-ordered string-keyed map, used by both
// StdfRecord and AtdfRecord so that field iteration always matches template
// declaration order, which a plain Go map cannot guarantee.
type fieldMap struct {
	keys   []string
	values map[string]any
}

func newFieldMap(capacity int) fieldMap {
	return fieldMap{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// Set assigns v to key, appending key to the iteration order on first use.
func (m *fieldMap) Set(key string, v any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value for key and whether it was present.
func (m fieldMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns field names in insertion order.
func (m fieldMap) Keys() []string {
	return m.keys
}

// Len returns the number of fields set.
func (m fieldMap) Len() int {
	return len(m.keys)
}

// StdfRecord is one decoded STDF record: its type and an ordered mapping of
// field name to decoded value.
type StdfRecord struct {
	Type   RecordType
	fields fieldMap
}

// Field returns the decoded value of name, or (nil, false) if the template
// has no such field or decoding never reached it.
func (r *StdfRecord) Field(name string) (any, bool) {
	return r.fields.Get(name)
}

// FieldNames returns the record's field names in template order.
func (r *StdfRecord) FieldNames() []string {
	return r.fields.Keys()
}

// AtdfRecord is one derived ATDF record: its type and an ordered mapping of
// ATDF field name to rendered value (string, an integer, or nil for "none")
//. Extra keys may be attached beyond the static ATDF template — notably
// the w_id/p_id cross-reference fields and any fields a vendor hook
// adds — which the ATDF writer ignores but a relational loader may
// use.
type AtdfRecord struct {
	Type   RecordType
	fields fieldMap
}

// NewAtdfRecord creates an empty AtdfRecord of the given type.
func NewAtdfRecord(rt RecordType) AtdfRecord {
	return AtdfRecord{Type: rt, fields: newFieldMap(8)}
}

// Set assigns the rendered value of an ATDF field, appending it to
// iteration order on first use.
func (r *AtdfRecord) Set(name string, v any) {
	r.fields.Set(name, v)
}

// Field returns the value of name and whether it is present.
func (r *AtdfRecord) Field(name string) (any, bool) {
	return r.fields.Get(name)
}

// FieldNames returns the record's field names in the order they were set.
func (r *AtdfRecord) FieldNames() []string {
	return r.fields.Keys()
}

// Clone returns a deep-enough copy of r: a new record sharing no fieldMap
// backing storage with r, so the copy can be mutated (e.g. by a vendor
// hook) without affecting r.
func (r AtdfRecord) Clone() AtdfRecord {
	out := NewAtdfRecord(r.Type)
	for _, k := range r.fields.Keys() {
		v, _ := r.fields.Get(k)
		out.Set(k, v)
	}
	return out
}

// RecordCollection accumulates AtdfRecords per RecordType in read order
//. It is created empty at file start and handed to a store.Loader at
// file end.
type RecordCollection struct {
	byType map[RecordType][]AtdfRecord
}

// NewRecordCollection returns an empty collection pre-populated with every
// known RecordType, so callers can always range over RecordTypes() and find
// a (possibly empty) slice.
func NewRecordCollection() *RecordCollection {
	c := &RecordCollection{byType: make(map[RecordType][]AtdfRecord, len(recordTypeOrder))}
	for _, rt := range recordTypeOrder {
		c.byType[rt] = nil
	}
	return c
}

// Append adds rec to the collection under its own RecordType.
func (c *RecordCollection) Append(rec AtdfRecord) {
	c.byType[rec.Type] = append(c.byType[rec.Type], rec)
}

// Records returns the accumulated records for rt, in read order. The
// returned slice must not be mutated by the caller.
func (c *RecordCollection) Records(rt RecordType) []AtdfRecord {
	return c.byType[rt]
}

// Latest returns the most recently appended record of rt, or ok=false if
// none have been appended yet.
func (c *RecordCollection) Latest(rt RecordType) (AtdfRecord, bool) {
	recs := c.byType[rt]
	if len(recs) == 0 {
		return AtdfRecord{}, false
	}
	return recs[len(recs)-1], true
}

// LatestMatching walks the records of rt in reverse, returning the first
// one whose head_number (and site_number, when both sides carry one)
// matches want. This is the "most recent matching entry" rule used to
// derive w_id/p_id cross-references.
func (c *RecordCollection) LatestMatching(rt RecordType, want AtdfRecord) (AtdfRecord, bool) {
	recs := c.byType[rt]
	wantHead, hasHead := want.Field("head_number")
	wantSite, hasSite := want.Field("site_number")
	for i := len(recs) - 1; i >= 0; i-- {
		cand := recs[i]
		if hasHead {
			ch, ok := cand.Field("head_number")
			if !ok || ch != wantHead {
				continue
			}
		}
		if hasSite {
			if cs, ok := cand.Field("site_number"); ok && cs != wantSite {
				continue
			}
		}
		return cand, true
	}
	return AtdfRecord{}, false
}
