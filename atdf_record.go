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

// Derive builds the AtdfRecord for rec by running every field of its ATDF
// template through the transform registry. Unregistered record types yield
// an empty AtdfRecord of the same type rather than an error: every
// RecordType DecodeRecord accepts has a template here, but a caller driving
// this function directly with a hand-built StdfRecord should not have to
// special-case the absence of one.
func Derive(rec *StdfRecord) AtdfRecord {
	template := atdfTemplates[rec.Type]
	out := NewAtdfRecord(rec.Type)
	for _, spec := range template {
		names := spec.Source.Names()
		values := make([]any, len(names))
		for i, name := range names {
			v, _ := rec.Field(name)
			values[i] = v
		}
		fn := lookupTransform(rec.Type, spec.Name)
		out.Set(spec.Name, fn(values))
	}
	return out
}

// AtdfTemplateFor returns the registered ATDF field template for rt, or nil
// if rt has none (only possible for a RecordType outside RecordTypes()).
func AtdfTemplateFor(rt RecordType) []AtdfFieldSpec {
	return atdfTemplates[rt]
}
