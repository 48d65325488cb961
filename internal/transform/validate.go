package transform

import (
	"fmt"
	"math"
	"strings"
	"time"

	"salesdw/internal/schema"
	"salesdw/pkg/records"
)

// Field names expected on raw records, matching the source CSV headers.
var (
	orderFields   = []string{"OrderID", "CustomerID", "ProductID", "OrderDate", "Quantity", "Price"}
	productFields = []string{"ProductID", "ProductName", "Category", "Cost"}
)

// OrderValidator turns a raw order record into a typed schema.Order or a
// Rejection. Rules run in order and short-circuit at the first failure:
// required-field presence, numeric/date coercion, positivity bounds.
type OrderValidator struct {
	// DateLayout is a fallback layout tried after ISO (2006-01-02).
	DateLayout string
}

func (v OrderValidator) Validate(line int, rec records.Record) (schema.Order, *Rejection) {
	var o schema.Order

	for _, f := range orderFields {
		if !rec.Has(f) {
			return o, &Rejection{
				Source: "orders", Line: line, Reason: ReasonMissingField,
				Detail: fmt.Sprintf("required field %q missing", f),
			}
		}
	}

	// Quantity is numeric, not integral: fractional quantities (bulk
	// goods, partial units) are valid and flow into Revenue as-is.
	qty, err := rec.Float("Quantity")
	if err != nil {
		return o, &Rejection{Source: "orders", Line: line, Reason: ReasonMalformedValue, Detail: err.Error()}
	}
	price, err := rec.Float("Price")
	if err != nil {
		return o, &Rejection{Source: "orders", Line: line, Reason: ReasonMalformedValue, Detail: err.Error()}
	}
	if math.IsNaN(qty) || math.IsInf(qty, 0) || math.IsNaN(price) || math.IsInf(price, 0) {
		return o, &Rejection{
			Source: "orders", Line: line, Reason: ReasonMalformedValue,
			Detail: "non-finite numeric value",
		}
	}

	date, err := parseDate(rec.String("OrderDate"), v.DateLayout)
	if err != nil {
		return o, &Rejection{Source: "orders", Line: line, Reason: ReasonMalformedValue, Detail: err.Error()}
	}

	if qty <= 0 {
		return o, &Rejection{
			Source: "orders", Line: line, Reason: ReasonNonPositiveQuantity,
			Detail: fmt.Sprintf("quantity %v", qty),
		}
	}
	if price <= 0 {
		return o, &Rejection{
			Source: "orders", Line: line, Reason: ReasonNonPositivePrice,
			Detail: fmt.Sprintf("price %v", price),
		}
	}

	o = schema.Order{
		OrderID:    strings.TrimSpace(rec.String("OrderID")),
		CustomerID: strings.TrimSpace(rec.String("CustomerID")),
		ProductID:  strings.TrimSpace(rec.String("ProductID")),
		OrderDate:  date,
		Quantity:   qty,
		Price:      price,
	}
	return o, nil
}

// ProductValidator turns a raw product record into a typed schema.Product
// or a Rejection.
type ProductValidator struct{}

func (ProductValidator) Validate(line int, rec records.Record) (schema.Product, *Rejection) {
	var p schema.Product

	for _, f := range productFields {
		if !rec.Has(f) {
			return p, &Rejection{
				Source: "products", Line: line, Reason: ReasonMissingField,
				Detail: fmt.Sprintf("required field %q missing", f),
			}
		}
	}

	cost, err := rec.Float("Cost")
	if err != nil {
		return p, &Rejection{Source: "products", Line: line, Reason: ReasonMalformedValue, Detail: err.Error()}
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return p, &Rejection{
			Source: "products", Line: line, Reason: ReasonMalformedValue,
			Detail: "non-finite cost",
		}
	}

	p = schema.Product{
		ProductID:   strings.TrimSpace(rec.String("ProductID")),
		ProductName: strings.TrimSpace(rec.String("ProductName")),
		Category:    strings.TrimSpace(rec.String("Category")),
		Cost:        cost,
	}
	return p, nil
}

// parseDate tries ISO first, then the configured fallback layout. Dates are
// normalized to midnight UTC so equal calendar dates compare equal.
func parseDate(s, layout string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(schema.DateLayout, s); err == nil {
		return t, nil
	}
	if layout != "" && layout != schema.DateLayout {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("field %q: invalid date %q", "OrderDate", s)
}
