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

// Eagle is a reserved extension point. This vendor's post-processing logic
// lives entirely in external test-cell software this package never
// observes, so the hook is a no-op today.
func Eagle(_ stdf.RecordType, rec stdf.AtdfRecord) stdf.AtdfRecord {
	return rec
}
