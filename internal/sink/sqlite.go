package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	fabricaerrors "github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/pkg/types"
)

// SQLiteSink writes records into a single table of a SQLite database.
// The table is created from the compiled schema, with columns in field
// declaration order.
type SQLiteSink struct {
	db        *sql.DB
	table     string
	fields    []schema.Field
	insertSQL string
}

// NewSQLiteSink creates the database file and the target table. An
// existing table with the same name is dropped first so each run
// produces a fresh dataset.
func NewSQLiteSink(ctx context.Context, path, table string, s *schema.Schema) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeOpenFailed, "failed to open SQLite database", err)
	}

	// WAL mode for better write performance during generation
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeOpenFailed, "failed to set journal mode", err)
	}

	fields := s.Fields()

	if _, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(table))); err != nil {
		db.Close()
		return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeOpenFailed, "failed to drop existing table", err)
	}

	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = fmt.Sprintf("%s %s NOT NULL", quoteIdent(f.Name), sqliteType(f.Spec.ValueKind()))
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(cols, ", "))
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		db.Close()
		return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeOpenFailed, "failed to create table", err)
	}

	names := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, f := range fields {
		names[i] = quoteIdent(f.Name)
		marks[i] = "?"
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(names, ", "), strings.Join(marks, ", "))

	return &SQLiteSink{
		db:        db,
		table:     table,
		fields:    fields,
		insertSQL: insertSQL,
	}, nil
}

// WriteRows inserts a batch of records inside a single transaction.
func (s *SQLiteSink) WriteRows(ctx context.Context, rows []types.Record) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to begin transaction", err)
	}

	stmt, err := tx.PrepareContext(ctx, s.insertSQL)
	if err != nil {
		tx.Rollback()
		return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to prepare insert statement", err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(s.fields))
	for _, rec := range rows {
		for i, f := range s.fields {
			args[i] = bindValue(rec[f.Name])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			tx.Rollback()
			return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to insert record", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to commit transaction", err)
	}
	return nil
}

// Close checkpoints the WAL and switches the database back to DELETE
// journal mode so the result is a single self-contained file.
func (s *SQLiteSink) Close() error {
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		s.db.Close()
		return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to checkpoint WAL", err)
	}
	if _, err := s.db.Exec("PRAGMA journal_mode=DELETE"); err != nil {
		s.db.Close()
		return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to reset journal mode", err)
	}
	if err := s.db.Close(); err != nil {
		return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to close database", err)
	}
	return nil
}

func sqliteType(k types.Kind) string {
	switch k {
	case types.KindInt:
		return "INTEGER"
	case types.KindFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

// bindValue converts a value to a driver-friendly type. RGB values are
// stored as their text rendering.
func bindValue(v types.Value) interface{} {
	if v.Kind() == types.KindRGB {
		return v.String()
	}
	return v.Native()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
