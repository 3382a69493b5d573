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

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	stdf "github.com/jervinkhoo/stdf2atdf"
)

func TestSQLiteLoader(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lot.db")

	loader, err := NewSQLiteLoader(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer loader.Close()

	coll := stdf.NewRecordCollection()

	far := stdf.NewAtdfRecord(stdf.FAR)
	far.Set("data_file_type", "A")
	far.Set("atdf_version", int64(2))
	coll.Append(far)

	mir := stdf.NewAtdfRecord(stdf.MIR)
	mir.Set("lot_id", "LOT42")
	mir.Set("setup_time", uint64(1577836800))
	mir.Set("catalyst_version", "1") // a vendor hook's extra key
	coll.Append(mir)

	for i := 0; i < 2; i++ {
		pir := stdf.NewAtdfRecord(stdf.PIR)
		pir.Set("head_number", uint64(1))
		pir.Set("site_number", uint64(i))
		pir.Set("p_id", int64(i+1))
		coll.Append(pir)
	}

	if err := loader.Load(context.Background(), "lot.stdf", coll); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	t.Run("one row per record", func(t *testing.T) {
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM table_PIR`).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 2 {
			t.Errorf("expected 2 PIR rows, got %d", n)
		}
	})

	t.Run("values survive the round trip", func(t *testing.T) {
		var lotID string
		if err := db.QueryRow(`SELECT lot_id FROM table_MIR`).Scan(&lotID); err != nil {
			t.Fatal(err)
		}
		if lotID != "LOT42" {
			t.Errorf("expected LOT42, got %q", lotID)
		}
	})

	t.Run("timestamps are re-rendered as RFC 3339", func(t *testing.T) {
		var setup string
		if err := db.QueryRow(`SELECT setup_time FROM table_MIR`).Scan(&setup); err != nil {
			t.Fatal(err)
		}
		if setup != "2020-01-01T00:00:00Z" {
			t.Errorf("expected 2020-01-01T00:00:00Z, got %q", setup)
		}
	})

	t.Run("extra keys become columns", func(t *testing.T) {
		var pID string
		if err := db.QueryRow(`SELECT p_id FROM table_PIR ORDER BY id LIMIT 1`).Scan(&pID); err != nil {
			t.Fatal(err)
		}
		if pID != "1" {
			t.Errorf("expected p_id 1, got %q", pID)
		}
		var cv string
		if err := db.QueryRow(`SELECT catalyst_version FROM table_MIR`).Scan(&cv); err != nil {
			t.Fatal(err)
		}
		if cv != "1" {
			t.Errorf("expected catalyst_version 1, got %q", cv)
		}
	})

	t.Run("empty record types get no table", func(t *testing.T) {
		var n int
		err := db.QueryRow(`SELECT COUNT(*) FROM table_WIR`).Scan(&n)
		if err == nil {
			t.Error("table_WIR should not exist for an empty record type")
		}
	})

	t.Run("reloading replaces tables", func(t *testing.T) {
		if err := loader.Load(context.Background(), "lot.stdf", coll); err != nil {
			t.Fatal(err)
		}
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM table_PIR`).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 2 {
			t.Errorf("reload should replace, not append: got %d rows", n)
		}
	})
}
