package sqlite

import (
	"context"

	"salesdw/internal/storage"
)

// Warehouse DDL, SQLite dialect. Surrogate/natural keys are primary keys
// and the fact table carries real foreign keys; the database backstops the
// referential invariants the transform already enforces.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS DimDate (
		DateKey   INTEGER PRIMARY KEY,
		OrderDate TEXT    NOT NULL,
		Year      INTEGER NOT NULL,
		Month     INTEGER NOT NULL,
		Day       INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS DimProduct (
		ProductID   TEXT PRIMARY KEY,
		ProductName TEXT NOT NULL,
		Category    TEXT NOT NULL,
		Cost        REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS FactSales (
		OrderID    TEXT    NOT NULL,
		CustomerID TEXT    NOT NULL,
		ProductID  TEXT    NOT NULL REFERENCES DimProduct(ProductID),
		DateKey    INTEGER NOT NULL REFERENCES DimDate(DateKey),
		Quantity   REAL NOT NULL,
		Price      REAL    NOT NULL,
		Revenue    REAL    NOT NULL
	)`,
}

// EnsureWarehouse creates the three tables if missing.
func EnsureWarehouse(ctx context.Context, repo storage.Repository) error {
	for _, stmt := range ddl {
		if err := repo.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
