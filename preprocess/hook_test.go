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
	"errors"
	"testing"

	stdf "github.com/jervinkhoo/stdf2atdf"
)

func TestLookup(t *testing.T) {
	t.Run("empty name is a no-op", func(t *testing.T) {
		hook, err := Lookup("")
		if err != nil {
			t.Fatal(err)
		}
		rec := stdf.NewAtdfRecord(stdf.MIR)
		rec.Set("lot_id", "L1")
		out := hook(stdf.MIR, rec)
		if v, _ := out.Field("lot_id"); v != "L1" {
			t.Errorf("no-op hook changed the record: %v", v)
		}
	})

	t.Run("names are case-insensitive", func(t *testing.T) {
		for _, name := range []string{"Teradyne", "ADVANTEST", " eagle "} {
			if _, err := Lookup(name); err != nil {
				t.Errorf("%q: %v", name, err)
			}
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := Lookup("keysight")
		if !errors.Is(err, stdf.ErrUnknownHook) {
			t.Errorf("expected ErrUnknownHook, got %v", err)
		}
	})
}

func TestTeradyne(t *testing.T) {
	t.Run("mir job name is upper-cased", func(t *testing.T) {
		rec := stdf.NewAtdfRecord(stdf.MIR)
		rec.Set("job_name", "flow_a")

		out := Teradyne(stdf.MIR, rec)
		if v, _ := out.Field("job_name"); v != "FLOW_A" {
			t.Errorf("expected FLOW_A, got %v", v)
		}
		if v, _ := out.Field("catalyst_version"); v != "1" {
			t.Errorf("expected stamped catalyst_version, got %v", v)
		}

		// The hook is pure: the input record is untouched.
		if v, _ := rec.Field("job_name"); v != "flow_a" {
			t.Errorf("input record was mutated: %v", v)
		}
	})

	t.Run("other record types pass through", func(t *testing.T) {
		rec := stdf.NewAtdfRecord(stdf.PIR)
		rec.Set("head_number", uint64(1))

		out := Teradyne(stdf.PIR, rec)
		if _, ok := out.Field("catalyst_version"); ok {
			t.Error("non-MIR records must not be stamped")
		}
	})
}

func TestAdvantestAndEagle(t *testing.T) {
	rec := stdf.NewAtdfRecord(stdf.MIR)
	rec.Set("lot_id", "L1")

	for name, hook := range map[string]stdf.Hook{"advantest": Advantest, "eagle": Eagle} {
		out := hook(stdf.MIR, rec)
		if v, _ := out.Field("lot_id"); v != "L1" {
			t.Errorf("%s: reserved hook changed the record: %v", name, v)
		}
	}
}
