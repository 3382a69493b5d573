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

// RecordType is the 3-letter symbolic tag for one of the ~24 STDF record
// kinds, e.g. "FAR", "PTR", "MIR".
type RecordType string

// The record types this package knows how to decode. Order here matches the
// rough order records appear within an STDF file, not any requirement of
// the format itself.
const (
	FAR RecordType = "FAR"
	ATR RecordType = "ATR"
	MIR RecordType = "MIR"
	MRR RecordType = "MRR"
	PCR RecordType = "PCR"
	HBR RecordType = "HBR"
	SBR RecordType = "SBR"
	PMR RecordType = "PMR"
	PGR RecordType = "PGR"
	PLR RecordType = "PLR"
	RDR RecordType = "RDR"
	SDR RecordType = "SDR"
	WIR RecordType = "WIR"
	WRR RecordType = "WRR"
	WCR RecordType = "WCR"
	PIR RecordType = "PIR"
	PRR RecordType = "PRR"
	TSR RecordType = "TSR"
	PTR RecordType = "PTR"
	MPR RecordType = "MPR"
	FTR RecordType = "FTR"
	BPS RecordType = "BPS"
	EPS RecordType = "EPS"
	GDR RecordType = "GDR"
	DTR RecordType = "DTR"
)

// recordTypeID is the on-wire (rec_typ, rec_sub) pair identifying a record
// type, per STDF V4 §3.
type recordTypeID struct {
	typ uint8
	sub uint8
}

// recordIDs maps each RecordType to its on-wire identifier.
var recordIDs = map[RecordType]recordTypeID{
	FAR: {0, 10},
	ATR: {0, 20},
	MIR: {1, 10},
	MRR: {1, 20},
	PCR: {1, 30},
	HBR: {1, 40},
	SBR: {1, 50},
	PMR: {1, 60},
	PGR: {1, 62},
	PLR: {1, 63},
	RDR: {1, 70},
	SDR: {1, 80},
	WIR: {2, 10},
	WRR: {2, 20},
	WCR: {2, 30},
	PIR: {5, 10},
	PRR: {5, 20},
	TSR: {10, 30},
	PTR: {15, 10},
	MPR: {15, 15},
	FTR: {15, 20},
	BPS: {20, 10},
	EPS: {20, 20},
	GDR: {50, 10},
	DTR: {50, 30},
}

// wireToRecordType is the inverse of recordIDs, built once at init time and
// used by the frame reader to resolve an on-wire header to a RecordType.
var wireToRecordType = func() map[recordTypeID]RecordType {
	m := make(map[recordTypeID]RecordType, len(recordIDs))
	for rt, id := range recordIDs {
		m[id] = rt
	}
	return m
}()

// FullName returns the descriptive name STDF V4 assigns to a record type,
// e.g. "Part Results Record" for PRR. Used in loader table comments and CLI
// validation messages. Unknown types return the empty string.
func (rt RecordType) FullName() string {
	return recordFullNames[rt]
}

var recordFullNames = map[RecordType]string{
	FAR: "File Attributes Record",
	ATR: "Audit Trail Record",
	MIR: "Master Information Record",
	MRR: "Master Results Record",
	PCR: "Part Count Record",
	HBR: "Hardware Bin Record",
	SBR: "Software Bin Record",
	PMR: "Pin Map Record",
	PGR: "Pin Group Record",
	PLR: "Pin List Record",
	RDR: "Retest Data Record",
	SDR: "Site Description Record",
	WIR: "Wafer Information Record",
	WRR: "Wafer Results Record",
	WCR: "Wafer Configuration Record",
	PIR: "Part Information Record",
	PRR: "Part Results Record",
	TSR: "Test Synopsis Record",
	PTR: "Parametric Test Record",
	MPR: "Multiple Result Parametric Record",
	FTR: "Functional Test Record",
	BPS: "Begin Program Section Record",
	EPS: "End Program Section Record",
	GDR: "Generic Data Record",
	DTR: "Datalog Text Record",
}

// RecordTypeFor resolves an on-wire (rec_typ, rec_sub) pair to a known
// RecordType. ok is false if the pair is not registered, in which case the
// frame should be skipped (ErrUnknownRecord, recoverable).
func RecordTypeFor(recTyp, recSub uint8) (rt RecordType, ok bool) {
	rt, ok = wireToRecordType[recordTypeID{recTyp, recSub}]
	return
}

// RecordTypes returns every known RecordType, in declaration order. Used to
// build the default (all-enabled) record type mask and to initialize an
// empty RecordCollection.
func RecordTypes() []RecordType {
	out := make([]RecordType, len(recordTypeOrder))
	copy(out, recordTypeOrder)
	return out
}

var recordTypeOrder = []RecordType{
	FAR, ATR, MIR, MRR, PCR, HBR, SBR, PMR, PGR, PLR, RDR, SDR,
	WIR, WRR, WCR, PIR, PRR, TSR, PTR, MPR, FTR, BPS, EPS, GDR, DTR,
}
