package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salesdw/internal/config"
	"salesdw/internal/warehouse"
)

// makeTempCSV creates a CSV with the given header and rows.
func makeTempCSV(tb testing.TB, dir, name string, header []string, rows [][]string) string {
	tb.Helper()
	p := filepath.Join(dir, name)
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(strings.Join(r, ","))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(p, []byte(b.String()), 0o644); err != nil {
		tb.Fatalf("write csv: %v", err)
	}
	return p
}

// openSQL opens a raw *sql.DB to the same DSN so we can verify loaded rows.
// The storage/all blank import in main.go makes the driver available.
func openSQL(tb testing.TB, dsn string) *sql.DB {
	tb.Helper()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		tb.Fatalf("sql open: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close() })
	return db
}

// Test_run_EndToEnd_SQLite runs the real pipeline against CSV files on disk
// and a file-backed sqlite warehouse, then checks the loaded rows and the
// revenue rollup through the query layer.
func Test_run_EndToEnd_SQLite(t *testing.T) {
	dir := t.TempDir()

	ordersPath := makeTempCSV(t, dir, "orders.csv",
		[]string{"OrderID", "CustomerID", "ProductID", "OrderDate", "Quantity", "Price"},
		[][]string{
			{"1001", "C001", "P1", "2024-01-15", "2", "12.00"},
			{"1002", "C002", "P2", "2024-01-16", "4", "24.00"},
			{"1003", "C001", "P3", "2024-02-01", "1", "35.00"},
			{"1004", "C003", "P9", "2024-02-02", "1", "5.00"},  // unknown product
			{"1005", "C002", "P1", "2024-02-03", "0", "12.00"}, // zero quantity
		})
	productsPath := makeTempCSV(t, dir, "products.csv",
		[]string{"ProductID", "ProductName", "Category", "Cost"},
		[][]string{
			{"P1", "Mouse", "Peripherals", "10.00"},
			{"P2", "Keyboard", "Peripherals", "20.00"},
			{"P3", "Monitor", "Displays", "35.00"},
		})

	dsn := "file:" + filepath.Join(dir, "sales.db")

	spec := config.Pipeline{Job: "e2e"}
	spec.Source.Orders.Path = ordersPath
	spec.Source.Products.Path = productsPath
	spec.Storage.Kind = "sqlite"
	spec.Storage.DB.DSN = dsn

	if err := run(context.Background(), spec); err != nil {
		t.Fatalf("run: %v", err)
	}

	db := openSQL(t, dsn)

	var facts int
	if err := db.QueryRow(`SELECT COUNT(*) FROM FactSales`).Scan(&facts); err != nil {
		t.Fatalf("count facts: %v", err)
	}
	if facts != 3 {
		t.Fatalf("FactSales rows = %d, want 3", facts)
	}

	rows, err := warehouse.RevenueByCategoryMonth(context.Background(), db)
	if err != nil {
		t.Fatalf("revenue query: %v", err)
	}
	want := []warehouse.CategoryMonth{
		{Year: 2024, Month: 1, Category: "Peripherals", TotalRevenue: 120},
		{Year: 2024, Month: 2, Category: "Displays", TotalRevenue: 35},
	}
	if len(rows) != len(want) {
		t.Fatalf("revenue rows = %+v, want %+v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

// Test_run_EndToEnd_SecondRunReplaces verifies the full-refresh semantics:
// a second run with fewer rows leaves no residue from the first.
func Test_run_EndToEnd_SecondRunReplaces(t *testing.T) {
	dir := t.TempDir()

	productsPath := makeTempCSV(t, dir, "products.csv",
		[]string{"ProductID", "ProductName", "Category", "Cost"},
		[][]string{{"P1", "Mouse", "Peripherals", "10.00"}})

	firstOrders := makeTempCSV(t, dir, "orders1.csv",
		[]string{"OrderID", "CustomerID", "ProductID", "OrderDate", "Quantity", "Price"},
		[][]string{
			{"1001", "C001", "P1", "2024-01-15", "2", "12.00"},
			{"1002", "C002", "P1", "2024-01-16", "1", "12.00"},
		})
	secondOrders := makeTempCSV(t, dir, "orders2.csv",
		[]string{"OrderID", "CustomerID", "ProductID", "OrderDate", "Quantity", "Price"},
		[][]string{
			{"2001", "C009", "P1", "2024-03-01", "3", "10.00"},
		})

	dsn := "file:" + filepath.Join(dir, "sales.db")

	spec := config.Pipeline{Job: "e2e"}
	spec.Source.Orders.Path = firstOrders
	spec.Source.Products.Path = productsPath
	spec.Storage.Kind = "sqlite"
	spec.Storage.DB.DSN = dsn

	if err := run(context.Background(), spec); err != nil {
		t.Fatalf("first run: %v", err)
	}
	spec.Source.Orders.Path = secondOrders
	if err := run(context.Background(), spec); err != nil {
		t.Fatalf("second run: %v", err)
	}

	db := openSQL(t, dsn)

	var facts int
	if err := db.QueryRow(`SELECT COUNT(*) FROM FactSales`).Scan(&facts); err != nil {
		t.Fatalf("count facts: %v", err)
	}
	if facts != 1 {
		t.Fatalf("FactSales rows after refresh = %d, want 1", facts)
	}
	var orderID string
	if err := db.QueryRow(`SELECT OrderID FROM FactSales`).Scan(&orderID); err != nil {
		t.Fatalf("select fact: %v", err)
	}
	if orderID != "2001" {
		t.Errorf("OrderID = %q, want %q", orderID, "2001")
	}
}
