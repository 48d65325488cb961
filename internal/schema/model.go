// Package schema defines the typed row models flowing through the pipeline:
// the validated raw rows coming out of the validator, and the dimension and
// fact rows making up a warehouse snapshot. Column names in db tags match
// the destination tables exactly.
package schema

import "time"

// DateLayout is the default calendar-date layout for source files.
const DateLayout = "2006-01-02"

// Order is a validated, fully typed sales order line.
type Order struct {
	OrderID    string
	CustomerID string
	ProductID  string
	OrderDate  time.Time
	Quantity   float64
	Price      float64
}

// Product is a validated, fully typed product master row.
type Product struct {
	ProductID   string
	ProductName string
	Category    string
	Cost        float64
}

// DimProduct is the canonical product dimension row. ProductID is the
// natural key and is unique within a snapshot.
type DimProduct struct {
	ProductID   string  `db:"ProductID"`
	ProductName string  `db:"ProductName"`
	Category    string  `db:"Category"`
	Cost        float64 `db:"Cost"`
}

// DimDate is the canonical date dimension row. DateKey is the integer
// surrogate key YYYYMMDD and is unique within a snapshot.
type DimDate struct {
	DateKey   int       `db:"DateKey"`
	OrderDate time.Time `db:"OrderDate"`
	Year      int       `db:"Year"`
	Month     int       `db:"Month"`
	Day       int       `db:"Day"`
}

// FactSales is one order line at the fact grain. OrderID repeats when an
// order spans multiple products. Revenue is always Quantity * Price.
type FactSales struct {
	OrderID    string  `db:"OrderID"`
	CustomerID string  `db:"CustomerID"`
	ProductID  string  `db:"ProductID"`
	DateKey    int     `db:"DateKey"`
	Quantity   float64 `db:"Quantity"`
	Price      float64 `db:"Price"`
	Revenue    float64 `db:"Revenue"`
}

// Snapshot is one complete warehouse state produced by a pipeline run.
// Dimensions are supersets of the keys referenced by Facts; the load
// replaces all three tables together or not at all.
type Snapshot struct {
	DimDates    []DimDate
	DimProducts []DimProduct
	Facts       []FactSales
}
