// Package sqlite implements the default warehouse backend using
// database/sql over a pure-Go SQLite driver. SQLite is a single-writer
// engine; the repository pins the pool to one connection so the
// foreign-key pragma applies to every statement.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"salesdw/internal/schema"
	"salesdw/internal/storage"
)

// Repository is a SQLite-backed storage.Repository.
type Repository struct {
	db *sql.DB
}

// NewRepository opens a SQLite database using the provided DSN, e.g.
// "warehouse.db" or "file:warehouse.db?cache=shared".
func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite: DSN must not be empty")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: enable foreign keys: %w", err)
	}

	return &Repository{db: db}, nil
}

// Exec executes an arbitrary SQL statement, typically DDL.
func (r *Repository) Exec(ctx context.Context, stmt string) error {
	if strings.TrimSpace(stmt) == "" {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("sqlite: exec: %w", err)
	}
	return nil
}

// Replace swaps the warehouse contents for the snapshot inside a single
// transaction: delete all three tables, insert dimensions, insert facts.
// Any failure rolls back, leaving prior contents untouched.
func (r *Repository) Replace(ctx context.Context, snap schema.Snapshot) error {
	tables := storage.Tables(snap)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin tx: %w", err)
	}
	defer tx.Rollback()

	// Facts first so foreign keys never dangle mid-transaction.
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+tables[i].Name); err != nil {
			return fmt.Errorf("sqlite: clear %s: %w", tables[i].Name, err)
		}
	}

	for _, t := range tables {
		if err := insertAll(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

func insertAll(ctx context.Context, tx *sql.Tx, t storage.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}
	placeholders := make([]string, len(t.Columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	stmtSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(t.Columns, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.PrepareContext(ctx, stmtSQL)
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert %s: %w", t.Name, err)
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("sqlite: insert into %s: %w", t.Name, err)
		}
	}
	return nil
}

// Close closes the underlying database handle.
func (r *Repository) Close() {
	r.db.Close()
}
