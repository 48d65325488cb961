// Command query runs the warehouse's business question against a SQLite
// warehouse file and prints the answer: total revenue per product category
// per month.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	_ "modernc.org/sqlite"

	"salesdw/internal/warehouse"
)

func main() {
	dbPath := flag.String("db", "data/sales.db", "SQLite warehouse file")
	flag.Parse()

	if _, err := os.Stat(*dbPath); err != nil {
		log.Fatalf("warehouse file: %v", err)
	}

	db, err := sql.Open("sqlite", *dbPath)
	if err != nil {
		log.Fatalf("open warehouse: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	rows, err := warehouse.RevenueByCategoryMonth(ctx, db)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("=== BUSINESS QUESTION ===")
	fmt.Println("What is the total revenue for each product category for each month in the data?")
	fmt.Println()
	fmt.Println("=== QUERY RESULTS ===")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Year\tMonth\tCategory\tTotalRevenue")
	total := 0.0
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%d\t%s\t$%s\n", r.Year, r.Month, r.Category, humanize.CommafWithDigits(r.TotalRevenue, 2))
		total += r.TotalRevenue
	}
	w.Flush()

	fmt.Println()
	fmt.Println("=== SUMMARY ===")
	fmt.Printf("Total rows returned: %d\n", len(rows))
	fmt.Printf("Total revenue across all categories: $%s\n", humanize.CommafWithDigits(total, 2))
}
