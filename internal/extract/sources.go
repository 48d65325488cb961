package extract

import (
	"context"

	"golang.org/x/sync/errgroup"

	"salesdw/internal/config"
	"salesdw/pkg/records"
)

// Required columns per source. These are the schema-level contract; a source
// missing any of them fails before row processing begins.
var (
	OrderColumns   = []string{"OrderID", "CustomerID", "ProductID", "OrderDate", "Quantity", "Price"}
	ProductColumns = []string{"ProductID", "ProductName", "Category", "Cost"}
)

// Sources is the pair of raw inputs for one pipeline run.
type Sources struct {
	Orders   config.SourceFile
	Products config.SourceFile
}

// Read loads both sources. The two files are independent, so they are read
// concurrently; the transform core downstream stays single-threaded.
func (s Sources) Read(ctx context.Context) (orders, products []records.Record, err error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = ReadCSV("orders", s.Orders.Path, OrderColumns, s.Orders.Options)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = ReadCSV("products", s.Products.Path, ProductColumns, s.Products.Options)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return orders, products, nil
}
