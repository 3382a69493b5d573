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

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	stdf "github.com/jervinkhoo/stdf2atdf"
)

// discoverInputs resolves the CLI's positional input argument to a list of
// STDF files. A path naming a file is returned as-is, whatever its
// extension; a directory is walked recursively for *.stdf and *.stdf.gz
// (case-insensitive), sorted for a predictable processing order.
func discoverInputs(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", stdf.ErrInputNotFound, root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isStdfName(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no *.stdf files under %s", stdf.ErrInputNotFound, root)
	}

	sort.Strings(files)
	return files, nil
}

func isStdfName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".stdf") || strings.HasSuffix(lower, ".stdf.gz")
}
