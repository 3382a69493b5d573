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

import stdf "github.com/jervinkhoo/stdf2atdf"

// Advantest is a reserved extension point: no Advantest-specific
// post-processing is defined yet, so this hook is a no-op today.
func Advantest(_ stdf.RecordType, rec stdf.AtdfRecord) stdf.AtdfRecord {
	return rec
}
