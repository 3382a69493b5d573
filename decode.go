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

import "encoding/binary"

// DecodeRecord decodes payload (the record body, header already consumed by
// the frame reader) according to rt's registered template, producing a
// StdfRecord with fields in template order.
//
// Running out of payload exactly at a field boundary stops decoding without
// an error: every field from that point on is left unset, mirroring vendor
// STDF writers that truncate trailing optional fields instead of padding
// them. A field that begins but cannot be completed from the remaining
// bytes (e.g. a Cf whose declared length overruns the buffer) is a hard
// error: the partially decoded record is returned with a DecodeOverrun
// error.
func DecodeRecord(rt RecordType, payload []byte, order binary.ByteOrder) (*StdfRecord, error) {
	template, ok := stdfTemplates[rt]
	if !ok {
		return nil, TemplateNotFound(rt)
	}

	rec := &StdfRecord{Type: rt, fields: newFieldMap(len(template))}
	offset := 0

	for _, spec := range template {
		if offset >= len(payload) {
			// Clean overrun: no bytes left for this or any later field.
			break
		}

		n := spec.Len
		if spec.Ref != "" {
			refVal, ok := rec.fields.Get(spec.Ref)
			if !ok {
				// The referenced field was itself never decoded (an
				// earlier overrun) — treat the dependent length as 0.
				n = 0
			} else {
				n = int(asInt(refVal))
			}
		}

		value, next, err := decodeValue(spec.Type, payload, order, offset, n)
		if err != nil {
			return rec, DecodeOverrun(rt, spec.Name, err)
		}
		if spec.Missing != nil && spec.Missing(value) {
			value = nil
		}
		rec.fields.Set(spec.Name, value)
		offset = next
	}

	return rec, nil
}

// asInt coerces a decoded scalar (uint64 or int64, the only two numeric
// shapes decodeValue ever produces) into an int length. Any other shape
// referenced as a length is a template bug and yields 0.
func asInt(v any) int64 {
	switch n := v.(type) {
	case uint64:
		return int64(n)
	case int64:
		return n
	default:
		return 0
	}
}
