package transform

import (
	"fmt"

	"salesdw/internal/schema"
)

// BuildFacts joins accepted orders against the completed dimensions and
// computes Revenue = Quantity * Price. An order whose ProductID is absent
// from the product dimension is rejected (UnknownProduct) rather than
// emitted as an orphan. The date dimension is built from the same orders,
// so a missing DateKey can only mean the builders disagree; that is an
// invariant breach and aborts the run.
//
// Output preserves input order. Identical order lines are not collapsed:
// the fact grain is one row per physical order line.
func BuildFacts(
	orders []schema.Order,
	dimProducts []schema.DimProduct,
	dimDates []schema.DimDate,
	report *Report,
) ([]schema.FactSales, error) {
	productIDs := make(map[string]struct{}, len(dimProducts))
	for _, p := range dimProducts {
		productIDs[p.ProductID] = struct{}{}
	}
	dateKeys := make(map[int]struct{}, len(dimDates))
	for _, d := range dimDates {
		dateKeys[d.DateKey] = struct{}{}
	}

	facts := make([]schema.FactSales, 0, len(orders))
	for i, o := range orders {
		if _, ok := productIDs[o.ProductID]; !ok {
			report.reject(Rejection{
				Source: "orders", Line: i + 1, Reason: ReasonUnknownProduct,
				Detail: fmt.Sprintf("product %q not in product dimension", o.ProductID),
			})
			continue
		}

		key := DeriveDateKey(o.OrderDate).Key
		if _, ok := dateKeys[key]; !ok {
			return nil, fmt.Errorf("date dimension missing key %d for order %q", key, o.OrderID)
		}

		facts = append(facts, schema.FactSales{
			OrderID:    o.OrderID,
			CustomerID: o.CustomerID,
			ProductID:  o.ProductID,
			DateKey:    key,
			Quantity:   o.Quantity,
			Price:      o.Price,
			Revenue:    o.Quantity * o.Price,
		})
	}
	return facts, nil
}
