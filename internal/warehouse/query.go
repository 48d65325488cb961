// Package warehouse holds the read side of the star schema: the fixed
// revenue-by-category-by-month business query and small inspection helpers
// for the SQLite warehouse file.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
)

// RevenueQuery answers the business question the warehouse exists for:
// total revenue per product category per month, ascending.
const RevenueQuery = `
SELECT d.Year, d.Month, p.Category, SUM(f.Revenue) AS TotalRevenue
FROM FactSales f
JOIN DimDate d ON f.DateKey = d.DateKey
JOIN DimProduct p ON f.ProductID = p.ProductID
GROUP BY d.Year, d.Month, p.Category
ORDER BY d.Year, d.Month, p.Category`

// CategoryMonth is one output row of RevenueQuery.
type CategoryMonth struct {
	Year         int
	Month        int
	Category     string
	TotalRevenue float64
}

// RevenueByCategoryMonth runs RevenueQuery against an open warehouse.
func RevenueByCategoryMonth(ctx context.Context, db *sql.DB) ([]CategoryMonth, error) {
	rows, err := db.QueryContext(ctx, RevenueQuery)
	if err != nil {
		return nil, fmt.Errorf("revenue query: %w", err)
	}
	defer rows.Close()

	var out []CategoryMonth
	for rows.Next() {
		var r CategoryMonth
		if err := rows.Scan(&r.Year, &r.Month, &r.Category, &r.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revenue rows: %w", err)
	}
	return out, nil
}
