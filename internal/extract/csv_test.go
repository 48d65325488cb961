package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salesdw/internal/config"
)

func TestReadCSVBasic(t *testing.T) {
	in := strings.NewReader(
		"OrderID,CustomerID,ProductID,OrderDate,Quantity,Price\n" +
			"O1,C1,P1,2024-01-15,2,25.00\n" +
			"O2,C2,P2,2024-01-16,1,48.00\n")
	recs, err := readCSV("orders", in, OrderColumns, config.Options{})
	if err != nil {
		t.Fatalf("readCSV: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].String("OrderID") != "O1" || recs[1].String("Price") != "48.00" {
		t.Fatalf("records wrong: %+v", recs)
	}
}

func TestReadCSVMissingColumnIsSchemaError(t *testing.T) {
	in := strings.NewReader("OrderID,CustomerID,ProductID,OrderDate,Quantity\nO1,C1,P1,2024-01-15,2\n")
	_, err := readCSV("orders", in, OrderColumns, config.Options{})
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SchemaError", err)
	}
	if se.Column != "Price" || se.Source != "orders" {
		t.Fatalf("schema error = %+v", se)
	}
}

func TestReadCSVHeaderBOMAndMapping(t *testing.T) {
	in := strings.NewReader("\uFEFFOrder Id,CustomerID,ProductID,OrderDate,Quantity,Price\nO1,C1,P1,2024-01-15,2,25\n")
	opt := config.Options{"header_map": map[string]any{"Order Id": "OrderID"}}
	recs, err := readCSV("orders", in, OrderColumns, opt)
	if err != nil {
		t.Fatalf("readCSV: %v", err)
	}
	if recs[0].String("OrderID") != "O1" {
		t.Fatalf("BOM or header mapping broken: %+v", recs[0])
	}
}

func TestReadCSVEmptyCellsBecomeNil(t *testing.T) {
	in := strings.NewReader("ProductID,ProductName,Category,Cost\nP1,Mouse,,10\n")
	recs, err := readCSV("products", in, ProductColumns, config.Options{})
	if err != nil {
		t.Fatalf("readCSV: %v", err)
	}
	if recs[0].Has("Category") {
		t.Fatalf("empty cell must read as missing: %+v", recs[0])
	}
}

func TestReadCSVCustomComma(t *testing.T) {
	in := strings.NewReader("ProductID;ProductName;Category;Cost\nP1;Mouse;Peripherals;10\n")
	recs, err := readCSV("products", in, ProductColumns, config.Options{"comma": ";"})
	if err != nil {
		t.Fatalf("readCSV: %v", err)
	}
	if recs[0].String("Category") != "Peripherals" {
		t.Fatalf("custom comma broken: %+v", recs[0])
	}
}

func TestCleanCell(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Mouse Pad", "Mouse Pad"},
		{"plain", "plain"},
		{"ctrl\x07char", "ctrlchar"},
		{"tab\tkept", "tab\tkept"},
	}
	for _, tc := range cases {
		if got := CleanCell(tc.in); got != tc.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSourcesRead(t *testing.T) {
	dir := t.TempDir()
	ordersPath := filepath.Join(dir, "orders.csv")
	productsPath := filepath.Join(dir, "products.csv")
	writeFile(t, ordersPath,
		"OrderID,CustomerID,ProductID,OrderDate,Quantity,Price\nO1,C1,P1,2024-01-15,2,25.00\n")
	writeFile(t, productsPath,
		"ProductID,ProductName,Category,Cost\nP1,Mouse,Peripherals,10.00\n")

	s := Sources{
		Orders:   config.SourceFile{Path: ordersPath, Options: config.Options{}},
		Products: config.SourceFile{Path: productsPath, Options: config.Options{}},
	}
	orders, products, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(orders) != 1 || len(products) != 1 {
		t.Fatalf("orders=%d products=%d, want 1/1", len(orders), len(products))
	}
}

func TestSourcesReadMissingFile(t *testing.T) {
	s := Sources{
		Orders:   config.SourceFile{Path: filepath.Join(t.TempDir(), "nope.csv")},
		Products: config.SourceFile{Path: filepath.Join(t.TempDir(), "nope.csv")},
	}
	if _, _, err := s.Read(context.Background()); err == nil {
		t.Fatal("expected error for missing source files")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
