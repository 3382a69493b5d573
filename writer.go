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
	"bufio"
	"io"
	"strings"
	"time"
)

// timestampFields names the ATDF fields that carry a UNIX-epoch U4 on the
// wire but render as "HH:MM:SS DD-MON-YYYY" text. Only these record types
// carry dated fields; identically-named fields elsewhere stay numeric.
var timestampFields = map[RecordType]map[string]bool{
	ATR: {"modification_timestamp": true},
	MIR: {"setup_time": true, "start_time": true},
	MRR: {"finish_time": true},
	WIR: {"start_time": true},
	WRR: {"finish_time": true},
}

// AtdfWriter serializes AtdfRecords to the ATDF text format. It holds
// no state beyond the underlying writer, so one AtdfWriter may be reused
// across every record of a file.
type AtdfWriter struct {
	w *bufio.Writer
}

// NewAtdfWriter wraps w for buffered ATDF output.
func NewAtdfWriter(w io.Writer) *AtdfWriter {
	return &AtdfWriter{w: bufio.NewWriter(w)}
}

// Flush flushes any buffered output to the underlying writer.
func (aw *AtdfWriter) Flush() error {
	return aw.w.Flush()
}

// WriteRecord renders one AtdfRecord per its ATDF template and writes it as
// a single ATDF line.
func (aw *AtdfWriter) WriteRecord(rec AtdfRecord) error {
	template := atdfTemplates[rec.Type]

	if _, err := aw.w.WriteString(string(rec.Type)); err != nil {
		return err
	}
	if err := aw.w.WriteByte(':'); err != nil {
		return err
	}
	if len(template) == 0 {
		return aw.w.WriteByte('\n')
	}

	fields := trimTrailingOptional(template, rec)

	for i, spec := range fields {
		if i > 0 {
			if err := aw.w.WriteByte('|'); err != nil {
				return err
			}
		}
		v, _ := rec.Field(spec.Name)
		if _, err := aw.w.WriteString(renderField(rec.Type, spec.Name, v)); err != nil {
			return err
		}
	}
	return aw.w.WriteByte('\n')
}

// trimTrailingOptional drops the run of trailing, non-required, empty
// fields from template.
func trimTrailingOptional(template []AtdfFieldSpec, rec AtdfRecord) []AtdfFieldSpec {
	end := len(template)
	for end > 0 {
		spec := template[end-1]
		if spec.Required {
			break
		}
		v, _ := rec.Field(spec.Name)
		if !isEmptyRendered(v) {
			break
		}
		end--
	}
	return template[:end]
}

// isEmptyRendered reports whether v renders as nothing at all, the shape
// the trailing-optional trimming rule treats as absent.
func isEmptyRendered(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}

// renderField renders one field's value to ATDF text, applying the
// timestamp conversion where applicable.
func renderField(rt RecordType, name string, v any) string {
	if v == nil {
		return ""
	}
	if timestampFields[rt][name] && isIntKind(v) {
		return formatAtdfTimestamp(asInt(v))
	}
	return renderString(v)
}

func isIntKind(v any) bool {
	switch v.(type) {
	case uint64, int64:
		return true
	default:
		return false
	}
}

// formatAtdfTimestamp converts a UNIX epoch (UTC) to ATDF's
// "HH:MM:SS DD-MON-YYYY" form, month abbreviation uppercase.
func formatAtdfTimestamp(epoch int64) string {
	t := time.Unix(epoch, 0).UTC()
	s := t.Format("15:04:05 02-Jan-2006")
	// Uppercase only the month abbreviation, not the whole string, so the
	// zero-padded numeric fields are untouched.
	day, month, rest, ok := splitDayMonth(s)
	if !ok {
		return strings.ToUpper(s)
	}
	return t.Format("15:04:05") + " " + day + "-" + strings.ToUpper(month) + "-" + rest
}

// splitDayMonth pulls the "DD-Mon-YYYY" suffix of an ATDF timestamp string
// apart so its month abbreviation can be uppercased in isolation.
func splitDayMonth(s string) (day, month, year string, ok bool) {
	fields := strings.Split(s, " ")
	if len(fields) != 2 {
		return "", "", "", false
	}
	parts := strings.SplitN(fields[1], "-", 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
