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

// Package store provides the default relational sink for decoded STDF
// data: a SQLite database with one table per populated record type, built
// with database/sql and the pure-Go modernc.org/sqlite driver so the core
// codec package itself never takes a SQL dependency.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	stdf "github.com/jervinkhoo/stdf2atdf"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// timestampFields names the (record type, field) pairs that arrive from the
// core as raw integer UNIX-epoch seconds and are re-rendered here as RFC
// 3339 UTC strings, independently of the ATDF text rendering.
var timestampFields = map[stdf.RecordType]map[string]bool{
	stdf.ATR: {"modification_timestamp": true},
	stdf.MIR: {"setup_time": true, "start_time": true},
	stdf.MRR: {"finish_time": true},
	stdf.WIR: {"start_time": true},
	stdf.WRR: {"finish_time": true},
}

// SQLiteLoader implements stdf.Loader against a SQLite database. It is safe
// to reuse across files but is not created per-worker automatically; the
// CLI constructs one per input file and the tables are dropped and
// recreated on every load.
type SQLiteLoader struct {
	db *sql.DB
}

// NewSQLiteLoader opens (creating if absent) the SQLite database at path,
// configured for a single writer via WAL journaling.
func NewSQLiteLoader(path string) (*SQLiteLoader, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: set WAL mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA synchronous = NORMAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: set synchronous = NORMAL: %w", err)
	}

	return &SQLiteLoader{db: db}, nil
}

// Close closes the underlying database connection.
func (l *SQLiteLoader) Close() error {
	return l.db.Close()
}

// Load implements stdf.Loader: it creates (replacing if present) one table
// per non-empty record type in coll and inserts every record in a single
// transaction per type.
func (l *SQLiteLoader) Load(ctx context.Context, path string, coll *stdf.RecordCollection) error {
	for _, rt := range stdf.RecordTypes() {
		records := coll.Records(rt)
		if len(records) == 0 {
			continue
		}

		columns := columnsFor(rt, records)
		table := "table_" + string(rt)

		if err := l.createTable(ctx, table, rt, columns); err != nil {
			return fmt.Errorf("store: create %s: %w", table, err)
		}
		if err := l.insertRecords(ctx, table, rt, columns, records); err != nil {
			return fmt.Errorf("store: insert into %s: %w", table, err)
		}
	}
	return nil
}

// columnsFor derives a stable column order: the record type's ATDF template
// fields, in template order, followed by any extra keys present on at least
// one record (e.g. w_id/p_id, or a vendor hook's stamped fields) in the
// order first observed.
func columnsFor(rt stdf.RecordType, records []stdf.AtdfRecord) []string {
	seen := make(map[string]bool)
	var columns []string

	for _, spec := range stdf.AtdfTemplateFor(rt) {
		if !seen[spec.Name] {
			seen[spec.Name] = true
			columns = append(columns, spec.Name)
		}
	}
	for _, rec := range records {
		for _, name := range rec.FieldNames() {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	return columns
}

// createTable (re)creates table with one TEXT column per entry in columns
// plus an integer row id, commented with the record type's full name.
func (l *SQLiteLoader) createTable(ctx context.Context, table string, rt stdf.RecordType, columns []string) error {
	if _, err := l.db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "-- %s\nCREATE TABLE %s (\n\tid INTEGER PRIMARY KEY", rt.FullName(), table)
	for _, col := range columns {
		fmt.Fprintf(&sb, ",\n\t%s TEXT", quoteIdent(col))
	}
	sb.WriteString("\n)")

	_, err := l.db.ExecContext(ctx, sb.String())
	return err
}

// insertRecords inserts every record into table within a single transaction.
func (l *SQLiteLoader) insertRecords(ctx context.Context, table string, rt stdf.RecordType, columns []string, records []stdf.AtdfRecord) error {
	if len(columns) == 0 {
		return nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	stmtSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(quoted, ","), placeholders)

	stmt, err := tx.PrepareContext(ctx, stmtSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		args := make([]any, len(columns))
		for i, col := range columns {
			v, _ := rec.Field(col)
			args[i] = renderCell(rt, col, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// renderCell stringifies v for storage, applying the RFC 3339 timestamp
// override where applicable.
func renderCell(rt stdf.RecordType, field string, v any) any {
	if v == nil {
		return nil
	}
	if timestampFields[rt][field] {
		if epoch, ok := asEpoch(v); ok {
			return time.Unix(epoch, 0).UTC().Format(time.RFC3339)
		}
	}
	switch n := v.(type) {
	case string:
		return n
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case []string:
		return strings.Join(n, ",")
	case []any:
		parts := make([]string, len(n))
		for i, e := range n {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(n)
	}
}

func asEpoch(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

// quoteIdent wraps an identifier in double quotes, the SQL-standard
// quoting SQLite accepts for column/table names that might otherwise
// collide with a keyword.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
