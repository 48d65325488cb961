package mssql

import (
	"context"

	"salesdw/internal/storage"
)

// Warehouse DDL, T-SQL dialect. SQL Server has no CREATE TABLE IF NOT
// EXISTS; existence is checked via OBJECT_ID.
var ddl = []string{
	`IF OBJECT_ID(N'dbo.DimDate', N'U') IS NULL
	CREATE TABLE dbo.DimDate (
		[DateKey]   int  NOT NULL PRIMARY KEY,
		[OrderDate] date NOT NULL,
		[Year]      int  NOT NULL,
		[Month]     int  NOT NULL,
		[Day]       int  NOT NULL
	)`,
	`IF OBJECT_ID(N'dbo.DimProduct', N'U') IS NULL
	CREATE TABLE dbo.DimProduct (
		[ProductID]   nvarchar(64)  NOT NULL PRIMARY KEY,
		[ProductName] nvarchar(255) NOT NULL,
		[Category]    nvarchar(255) NOT NULL,
		[Cost]        float         NOT NULL
	)`,
	`IF OBJECT_ID(N'dbo.FactSales', N'U') IS NULL
	CREATE TABLE dbo.FactSales (
		[OrderID]    nvarchar(64) NOT NULL,
		[CustomerID] nvarchar(64) NOT NULL,
		[ProductID]  nvarchar(64) NOT NULL REFERENCES dbo.DimProduct ([ProductID]),
		[DateKey]    int          NOT NULL REFERENCES dbo.DimDate ([DateKey]),
		[Quantity]   float        NOT NULL,
		[Price]      float        NOT NULL,
		[Revenue]    float        NOT NULL
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
