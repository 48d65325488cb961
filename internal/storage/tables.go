package storage

import (
	"salesdw/internal/schema"
)

// Warehouse table and column names, shared by every backend. The order of
// Tables is the insert order: dimensions first so fact foreign keys always
// resolve; deletes run in reverse.
const (
	TableDimDate    = "DimDate"
	TableDimProduct = "DimProduct"
	TableFactSales  = "FactSales"
)

// Table is one destination table flattened to positional rows aligned with
// Columns. OrderDate values are rendered as ISO date strings so every
// backend binds them the same way.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Tables flattens a snapshot into the three destination tables in load
// order.
func Tables(snap schema.Snapshot) []Table {
	dates := Table{
		Name:    TableDimDate,
		Columns: []string{"DateKey", "OrderDate", "Year", "Month", "Day"},
		Rows:    make([][]any, 0, len(snap.DimDates)),
	}
	for _, d := range snap.DimDates {
		dates.Rows = append(dates.Rows, []any{
			d.DateKey, d.OrderDate.Format(schema.DateLayout), d.Year, d.Month, d.Day,
		})
	}

	products := Table{
		Name:    TableDimProduct,
		Columns: []string{"ProductID", "ProductName", "Category", "Cost"},
		Rows:    make([][]any, 0, len(snap.DimProducts)),
	}
	for _, p := range snap.DimProducts {
		products.Rows = append(products.Rows, []any{
			p.ProductID, p.ProductName, p.Category, p.Cost,
		})
	}

	facts := Table{
		Name:    TableFactSales,
		Columns: []string{"OrderID", "CustomerID", "ProductID", "DateKey", "Quantity", "Price", "Revenue"},
		Rows:    make([][]any, 0, len(snap.Facts)),
	}
	for _, f := range snap.Facts {
		facts.Rows = append(facts.Rows, []any{
			f.OrderID, f.CustomerID, f.ProductID, f.DateKey, f.Quantity, f.Price, f.Revenue,
		})
	}

	return []Table{dates, products, facts}
}
