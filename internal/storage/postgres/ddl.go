package postgres

import (
	"context"

	"salesdw/internal/storage"
)

// Warehouse DDL, Postgres dialect. Table and column names are quoted to
// keep the exact mixed-case names shared with the other backends.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS "DimDate" (
		"DateKey"   integer PRIMARY KEY,
		"OrderDate" date    NOT NULL,
		"Year"      integer NOT NULL,
		"Month"     integer NOT NULL,
		"Day"       integer NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "DimProduct" (
		"ProductID"   text PRIMARY KEY,
		"ProductName" text NOT NULL,
		"Category"    text NOT NULL,
		"Cost"        double precision NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "FactSales" (
		"OrderID"    text    NOT NULL,
		"CustomerID" text    NOT NULL,
		"ProductID"  text    NOT NULL REFERENCES "DimProduct" ("ProductID"),
		"DateKey"    integer NOT NULL REFERENCES "DimDate" ("DateKey"),
		"Quantity"   double precision NOT NULL,
		"Price"      double precision NOT NULL,
		"Revenue"    double precision NOT NULL
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
