// Command dbview prints the tables of a SQLite warehouse file and a short
// preview of each, for eyeballing a load without a SQL shell.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	_ "modernc.org/sqlite"

	"salesdw/internal/warehouse"
)

func main() {
	dbPath := flag.String("db", "data/sales.db", "SQLite warehouse file")
	limit := flag.Int("limit", 10, "max rows to preview per table")
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
	tables, err := warehouse.ListTables(ctx, db)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("=== Tables in the database ===")
	for _, t := range tables {
		fmt.Println(t)
	}

	for _, t := range tables {
		cols, rows, err := warehouse.Preview(ctx, db, t, *limit)
		if err != nil {
			log.Fatalf("%v", err)
		}

		fmt.Printf("\n=== %s Table ===\n", t)
		fmt.Printf("Showing up to %d rows, %d columns\n", *limit, len(cols))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(cols, "\t"))
		for _, r := range rows {
			fmt.Fprintln(w, strings.Join(r, "\t"))
		}
		w.Flush()
		fmt.Println(strings.Repeat("-", 50))
	}
}
