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

package preprocess

import (
	"strings"

	stdf "github.com/jervinkhoo/stdf2atdf"
)

// Teradyne is the Teradyne vendor hook: on MIR it upper-cases
// job_name and stamps two constant fields Teradyne-specific downstream
// tooling expects. The stamped fields are not part of MIR's static ATDF
// template, so they reach the relational loader but never the .atdf text
//.
func Teradyne(rt stdf.RecordType, rec stdf.AtdfRecord) stdf.AtdfRecord {
	if rt != stdf.MIR {
		return rec
	}
	out := rec.Clone()
	if v, ok := out.Field("job_name"); ok {
		if s, ok := v.(string); ok {
			out.Set("job_name", strings.ToUpper(s))
		}
	}
	out.Set("catalyst_version", "1")
	out.Set("slot_number", int64(0))
	return out
}
