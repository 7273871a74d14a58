package output

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

// SQLiteTable is the table records are inserted into.
const SQLiteTable = "games"

// SQLiteWriter inserts records into a games table with one TEXT column
// per schema field. Inserts are batched in a transaction that Flush
// commits.
type SQLiteWriter struct {
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
	ins  string
}

// NewSQLiteWriter opens (or creates) the database at path and makes sure
// the games table exists.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}

	cols := pgn.Columns()
	defs := make([]string, len(cols))
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = fmt.Sprintf("%q", c)
		defs[i] = names[i] + " TEXT"
		marks[i] = "?"
	}

	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s(%s)", SQLiteTable, strings.Join(defs, ", "))
	if _, err := db.Exec(create); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create games table")
	}

	return &SQLiteWriter{
		db:  db,
		ins: fmt.Sprintf("INSERT INTO %s(%s) VALUES(%s)", SQLiteTable, strings.Join(names, ","), strings.Join(marks, ",")),
	}, nil
}

func (w *SQLiteWriter) begin() error {
	tx, err := w.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	stmt, err := tx.Prepare(w.ins)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "prepare insert")
	}
	w.tx, w.stmt = tx, stmt
	return nil
}

// WriteRecord inserts one row.
func (w *SQLiteWriter) WriteRecord(rec *pgn.GameRecord) error {
	if w.tx == nil {
		if err := w.begin(); err != nil {
			return err
		}
	}
	row := rec.Row()
	args := make([]any, len(row))
	for i, v := range row {
		args[i] = v
	}
	_, err := w.stmt.Exec(args...)
	return err
}

// Flush commits pending inserts.
func (w *SQLiteWriter) Flush() error {
	if w.tx == nil {
		return nil
	}
	w.stmt.Close()
	err := w.tx.Commit()
	w.tx, w.stmt = nil, nil
	if err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}

// Close commits and closes the database.
func (w *SQLiteWriter) Close() error {
	err := w.Flush()
	if cerr := w.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// DB exposes the underlying handle for queries.
func (w *SQLiteWriter) DB() *sql.DB {
	return w.db
}
