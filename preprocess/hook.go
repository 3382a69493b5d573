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

// Package preprocess implements the vendor post-processing hooks: an open
// enum of named, pure AtdfRecord transforms applied after the ATDF
// transformer and before an AtdfRecord is appended to its file's collection.
package preprocess

import (
	"strings"

	stdf "github.com/jervinkhoo/stdf2atdf"
)

// Lookup resolves name to a stdf.Hook. The empty string resolves to a no-op
// hook; an unrecognized name returns stdf.ErrUnknownHook.
func Lookup(name string) (stdf.Hook, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return noop, nil
	case "advantest":
		return Advantest, nil
	case "teradyne":
		return Teradyne, nil
	case "eagle":
		return Eagle, nil
	default:
		return nil, stdf.UnknownHook(name)
	}
}

func noop(_ stdf.RecordType, rec stdf.AtdfRecord) stdf.AtdfRecord {
	return rec
}
