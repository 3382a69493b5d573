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

import "syscall"

// unconstrainedMemory is returned when the host's free memory cannot be
// determined, so the memory term of the pool-sizing formula never becomes
// the binding constraint.
const unconstrainedMemory = 1 << 40 // 1 TiB

// availableMemoryBytes reports free system memory for worker pool sizing,
// via syscall.Sysinfo (Linux's sysinfo(2)). ATE data-conversion jobs run on
// the same Linux test-cell hosts STDF itself targets, so the stdlib call
// covers the deployment target without a system-metrics dependency.
func availableMemoryBytes() uint64 {
	var info syscall.Sysinfo_t
	if err := syscall.Sysinfo(&info); err != nil {
		return unconstrainedMemory
	}
	return uint64(info.Freeram) * uint64(info.Unit)
}
