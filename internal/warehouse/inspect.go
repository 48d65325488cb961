package warehouse

import (
	"context"
	"database/sql"
	"fmt"
)

// ListTables returns the user table names of a SQLite warehouse file.
func ListTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Preview returns the column names and up to limit rows of a table, every
// value rendered as a string for display.
func Preview(ctx context.Context, db *sql.DB, table string, limit int) ([]string, [][]string, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %q LIMIT %d", table, limit))
	if err != nil {
		return nil, nil, fmt.Errorf("preview %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("columns of %s: %w", table, err)
	}

	var out [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		vals := make([]string, len(cols))
		for i, v := range raw {
			if v.Valid {
				vals[i] = v.String
			} else {
				vals[i] = "NULL"
			}
		}
		out = append(out, vals)
	}
	return cols, out, rows.Err()
}
