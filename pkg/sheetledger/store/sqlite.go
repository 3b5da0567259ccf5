// Package store persists ledger tables to SQLite with replace-on-write semantics.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
	_ "modernc.org/sqlite"
)

// DefaultPath is the database file the reporting dashboard reads.
const DefaultPath = "planta_agua.db"

// Store is a SQLite database holding the output tables.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ReplaceTable drops schema's table, recreates it and inserts rows, all in
// one transaction. Each row holds one value per schema column.
func (s *Store) ReplaceTable(ctx context.Context, schema models.Schema, rows [][]any) error {
	return s.replace(ctx, []tableRows{{schema: schema, rows: rows}})
}

// WriteTableSet replace-writes every non-empty collection of ts in a single
// transaction: either every table is replaced or none is. Tables whose
// collection is empty keep their previous contents. It returns the number of
// rows written per SQL table.
func (s *Store) WriteTableSet(ctx context.Context, ts *models.TableSet) (map[string]int, error) {
	var batch []tableRows
	for _, schema := range models.Schemas {
		if rows := ts.Rows(schema); len(rows) > 0 {
			batch = append(batch, tableRows{schema: schema, rows: rows})
		}
	}
	written := make(map[string]int, len(batch))
	if len(batch) == 0 {
		return written, nil
	}
	if err := s.replace(ctx, batch); err != nil {
		return nil, err
	}
	for _, t := range batch {
		written[t.schema.Table] = len(t.rows)
	}
	return written, nil
}

type tableRows struct {
	schema models.Schema
	rows   [][]any
}

func (s *Store) replace(ctx context.Context, batch []tableRows) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, t := range batch {
		if err := replaceTable(ctx, tx, t.schema, t.rows); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func replaceTable(ctx context.Context, tx *sql.Tx, schema models.Schema, rows [][]any) error {
	table := quoteIdent(schema.Table)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("drop %s: %w", schema.Table, err)
	}
	if _, err := tx.ExecContext(ctx, createStatement(schema)); err != nil {
		return fmt.Errorf("create %s: %w", schema.Table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertStatement(schema))
	if err != nil {
		return fmt.Errorf("prepare insert %s: %w", schema.Table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if len(row) != len(schema.Columns) {
			return fmt.Errorf("insert %s row %d: got %d values, want %d",
				schema.Table, i+1, len(row), len(schema.Columns))
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", schema.Table, i+1, err)
		}
	}
	return nil
}

// HasTable reports whether the named table exists.
func (s *Store) HasTable(ctx context.Context, name string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("lookup %s: %w", name, err)
	}
	return n > 0, nil
}

// ReadTable returns the column names and every row of the named table in
// insertion order.
func (s *Store) ReadTable(ctx context.Context, name string) ([]string, [][]any, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(name)+" ORDER BY rowid")
	if err != nil {
		return nil, nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("columns %s: %w", name, err)
	}

	var out [][]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", name, err)
		}
		out = append(out, vals)
	}
	return cols, out, rows.Err()
}

func createStatement(schema models.Schema) string {
	defs := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		defs[i] = quoteIdent(c.Name) + " " + string(c.Type)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(schema.Table), strings.Join(defs, ", "))
}

func insertStatement(schema models.Schema) string {
	names := make([]string, len(schema.Columns))
	marks := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		names[i] = quoteIdent(c.Name)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(schema.Table), strings.Join(names, ", "), strings.Join(marks, ", "))
}

// quoteIdent quotes a SQL identifier; column names such as TOTAL-PAGAR need it.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
