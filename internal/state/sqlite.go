package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS processed_files (path TEXT PRIMARY KEY)`

type sqliteStore struct {
	path string
	db   *sql.DB
}

// NewSQLite opens (creating if needed) a SQLite database at path holding
// one row per processed file.
func NewSQLite(path string) (Store, error) {
	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	return &sqliteStore{path: path, db: db}, nil
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=rwc&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	// A single connection keeps the read-then-write of one pass on one session.
	db.SetMaxOpenConns(1)
	return db, nil
}

func (s *sqliteStore) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return s.classify(fmt.Errorf("create table: %w", err))
	}
	return nil
}

func (s *sqliteStore) Load(ctx context.Context) (Set, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT path FROM processed_files`)
	if err != nil {
		return nil, s.classify(fmt.Errorf("query state: %w", err))
	}
	defer rows.Close()

	paths := NewSet()
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan state row: %w", err)
		}
		paths.Add(p)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify(fmt.Errorf("iterate state: %w", err))
	}
	return paths, nil
}

func (s *sqliteStore) Save(ctx context.Context, paths Set) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin state tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM processed_files`); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO processed_files (path) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range paths.Sorted() {
		if _, err := stmt.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("insert %s: %w", p, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit state: %w", err)
	}
	return nil
}

// Reset closes the database, renames the file together with its journals and
// opens a fresh one in its place.
func (s *sqliteStore) Reset(ctx context.Context) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close state db: %w", err)
	}
	moveErr := moveAside(s.path, s.path+"-journal", s.path+"-wal", s.path+"-shm")

	db, err := openSQLite(s.path)
	if err != nil {
		return errors.Join(moveErr, err)
	}
	s.db = db
	return moveErr
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// classify turns "file is not a database" failures into CorruptStateError.
func (s *sqliteStore) classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrNotADB || sqliteErr.Code == sqlite3.ErrCorrupt) {
		return &CorruptStateError{Path: s.path, Err: err}
	}
	return err
}
