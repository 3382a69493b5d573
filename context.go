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

import "strings"

// RecordTypeMask selects which RecordTypes a conversion processes; an
// absent key is treated as disabled. Use AllRecordTypes for the default
// (every type enabled).
type RecordTypeMask map[RecordType]bool

// AllRecordTypes returns a mask with every known RecordType enabled, the
// default when the CLI's -r/--records flag is not given.
func AllRecordTypes() RecordTypeMask {
	m := make(RecordTypeMask, len(recordTypeOrder))
	for _, rt := range recordTypeOrder {
		m[rt] = true
	}
	return m
}

// NewRecordTypeMask builds a mask enabling only the named record types.
// Names are matched case-insensitively against the known RecordTypes. An
// empty names list returns AllRecordTypes, matching the CLI default. An
// unrecognized name is reported via ErrUnknownRecord so the caller can
// surface a validation error rather than silently processing nothing.
func NewRecordTypeMask(names []string) (RecordTypeMask, error) {
	if len(names) == 0 {
		return AllRecordTypes(), nil
	}
	m := make(RecordTypeMask, len(names))
	for _, name := range names {
		rt := RecordType(strings.ToUpper(strings.TrimSpace(name)))
		if _, ok := recordIDs[rt]; !ok {
			return nil, UnknownRecordName(name)
		}
		m[rt] = true
	}
	return m, nil
}

// Enabled reports whether rt should be processed under this mask.
func (m RecordTypeMask) Enabled(rt RecordType) bool {
	return m[rt]
}

// FileContext carries the per-file state the pipeline needs beyond the
// record-by-record decode: the active record type filter and the wafer/part
// cross-reference counters. It is created when a
// file is opened and discarded when the file is done; it is never shared
// across workers.
type FileContext struct {
	Mask RecordTypeMask

	wID int64
	pID int64
}

// NewFileContext creates a FileContext for one file, using mask to filter
// which record types are processed (nil means AllRecordTypes).
func NewFileContext(mask RecordTypeMask) *FileContext {
	if mask == nil {
		mask = AllRecordTypes()
	}
	return &FileContext{Mask: mask}
}

func (fc *FileContext) nextWaferID() int64 {
	fc.wID++
	return fc.wID
}

func (fc *FileContext) nextPartID() int64 {
	fc.pID++
	return fc.pID
}

// AttachCrossReference derives and sets the w_id/p_id cross-reference keys
// on rec by consulting coll, under the "most recent matching entry" rule.
// These keys are extra AtdfRecord fields outside the static ATDF template
// — the ATDF writer never renders them; the relational
// loader reads them to link WIR/PIR/PRR/PTR/MPR/FTR/WRR rows together.
func (fc *FileContext) AttachCrossReference(coll *RecordCollection, rec *AtdfRecord) {
	switch rec.Type {
	case WIR:
		rec.Set("w_id", fc.nextWaferID())
	case WRR:
		if wir, ok := coll.LatestMatching(WIR, *rec); ok {
			if wID, ok := wir.Field("w_id"); ok {
				rec.Set("w_id", wID)
			}
		}
	case PIR:
		rec.Set("p_id", fc.nextPartID())
		if wir, ok := coll.LatestMatching(WIR, *rec); ok {
			if wID, ok := wir.Field("w_id"); ok {
				rec.Set("w_id", wID)
			}
		}
	case PTR, MPR, FTR:
		if pir, ok := coll.LatestMatching(PIR, *rec); ok {
			if pID, ok := pir.Field("p_id"); ok {
				rec.Set("p_id", pID)
			}
			if wID, ok := pir.Field("w_id"); ok {
				rec.Set("w_id", wID)
			}
		}
	case PRR:
		if pir, ok := coll.LatestMatching(PIR, *rec); ok {
			if pID, ok := pir.Field("p_id"); ok {
				rec.Set("p_id", pID)
			}
		} else {
			rec.Set("p_id", fc.nextPartID())
		}
		if wir, ok := coll.LatestMatching(WIR, *rec); ok {
			if wID, ok := wir.Field("w_id"); ok {
				rec.Set("w_id", wID)
			}
		}
	}
}
