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
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes one conversion job's defaults. Every
// field mirrors a CLI flag; an explicitly-passed flag always overrides the
// value a config file supplies, so every field is a pointer distinguishing
// "absent" from "zero value".
type Config struct {
	Output       *bool    `yaml:"output,omitempty"`
	Database     *bool    `yaml:"database,omitempty"`
	Records      []string `yaml:"records,omitempty"`
	Workers      *int     `yaml:"workers,omitempty"`
	Preprocessor *string  `yaml:"preprocessor,omitempty"`
}

// ReadConfig decodes a Config from r. Unknown keys are rejected so a typo in
// a hand-edited YAML file fails fast instead of silently being ignored.
func ReadConfig(r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	return cfg, nil
}
