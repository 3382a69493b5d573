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
	"strings"
	"testing"
)

func TestReadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		cfg, err := ReadConfig(strings.NewReader(`
output: true
database: false
records: [FAR, MIR, PTR]
workers: 4
preprocessor: teradyne
`))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Output == nil || !*cfg.Output {
			t.Error("output should be true")
		}
		if cfg.Database == nil || *cfg.Database {
			t.Error("database should be false")
		}
		if len(cfg.Records) != 3 || cfg.Records[2] != "PTR" {
			t.Errorf("unexpected records: %v", cfg.Records)
		}
		if cfg.Workers == nil || *cfg.Workers != 4 {
			t.Error("workers should be 4")
		}
		if cfg.Preprocessor == nil || *cfg.Preprocessor != "teradyne" {
			t.Error("preprocessor should be teradyne")
		}
	})

	t.Run("empty document distinguishes absent from zero", func(t *testing.T) {
		cfg, err := ReadConfig(strings.NewReader(""))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Output != nil || cfg.Workers != nil {
			t.Error("absent keys should stay nil")
		}
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := ReadConfig(strings.NewReader("worker: 4\n"))
		if err == nil {
			t.Error("a typoed key should fail to decode")
		}
	})
}
