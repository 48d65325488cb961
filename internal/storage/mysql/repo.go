// Package mysql implements the warehouse backend over database/sql with
// the go-sql-driver. InnoDB gives the replace load its transaction; DDL is
// bootstrapped separately since MySQL autocommits DDL statements.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"salesdw/internal/schema"
	"salesdw/internal/storage"
)

// Repository is a MySQL-backed storage.Repository.
type Repository struct {
	db *sql.DB
}

// NewRepository opens a MySQL connection using the provided DSN, e.g.
// "user:pass@tcp(localhost:3306)/warehouse?parseTime=true".
func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("mysql: DSN must not be empty")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql: open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql: ping: %w", err)
	}
	return &Repository{db: db}, nil
}

// Exec executes an arbitrary SQL statement, typically DDL.
func (r *Repository) Exec(ctx context.Context, stmt string) error {
	if strings.TrimSpace(stmt) == "" {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("mysql: exec: %w", err)
	}
	return nil
}

// Replace swaps the warehouse contents for the snapshot in one transaction.
func (r *Repository) Replace(ctx context.Context, snap schema.Snapshot) error {
	tables := storage.Tables(snap)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mysql: begin tx: %w", err)
	}
	defer tx.Rollback()

	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+quote(tables[i].Name)); err != nil {
			return fmt.Errorf("mysql: clear %s: %w", tables[i].Name, err)
		}
	}

	for _, t := range tables {
		if err := insertAll(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("mysql: commit: %w", err)
	}
	return nil
}

func insertAll(ctx context.Context, tx *sql.Tx, t storage.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}
	cols := make([]string, len(t.Columns))
	placeholders := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quote(c)
		placeholders[i] = "?"
	}
	stmtSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(t.Name), strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.PrepareContext(ctx, stmtSQL)
	if err != nil {
		return fmt.Errorf("mysql: prepare insert %s: %w", t.Name, err)
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("mysql: insert into %s: %w", t.Name, err)
		}
	}
	return nil
}

func quote(ident string) string {
	return "`" + ident + "`"
}

// Close closes the underlying database handle.
func (r *Repository) Close() {
	r.db.Close()
}
