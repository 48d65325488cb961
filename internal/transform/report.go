// Package transform converts raw order and product records into a validated,
// deduplicated, key-bearing warehouse snapshot: DimDate, DimProduct and
// FactSales rows plus a data-quality report. The whole stage is a single
// synchronous pass over in-memory slices; it holds no state between runs.
package transform

import (
	"fmt"
	"sort"
	"strings"

	"salesdw/internal/schema"
)

// Reason classifies why a single row was dropped. Row rejections never abort
// a run; they are counted and reported.
type Reason string

const (
	ReasonMissingField        Reason = "MissingField"
	ReasonMalformedValue      Reason = "MalformedValue"
	ReasonNonPositiveQuantity Reason = "NonPositiveQuantity"
	ReasonNonPositivePrice    Reason = "NonPositivePrice"
	ReasonUnknownProduct      Reason = "UnknownProduct"
)

// Rejection records one dropped input row. Line counts 1-based data rows:
// within the source during validation, within the accepted-order sequence
// during the fact build.
type Rejection struct {
	Source string // "orders" or "products"
	Line   int
	Reason Reason
	Detail string
}

// Conflict records a product row that shared a ProductID with an earlier row
// but carried different attributes. The earlier row is kept.
type Conflict struct {
	ProductID string
	Kept      schema.Product
	Dropped   schema.Product
}

// Report accounts for every input row of a run: each row either survives
// into the snapshot or shows up in a rejection, duplicate, or conflict
// count. Counts therefore sum back to the input totals.
type Report struct {
	Stage Stage

	OrdersIn   int
	ProductsIn int

	OrdersAccepted   int // orders surviving validation (pre fact build)
	ProductsAccepted int // products surviving validation (pre dedup)

	Rejections map[Reason]int
	Rejected   []Rejection

	// DuplicateProducts counts later occurrences of an already-seen
	// ProductID, whether identical or conflicting.
	DuplicateProducts int
	Conflicts         []Conflict

	DimDateRows    int
	DimProductRows int
	FactRows       int
}

func newReport() *Report {
	return &Report{Stage: StageIdle, Rejections: map[Reason]int{}}
}

func (r *Report) reject(rej Rejection) {
	r.Rejections[rej.Reason]++
	r.Rejected = append(r.Rejected, rej)
}

// OrdersRejected is the number of order rows dropped across all stages.
func (r *Report) OrdersRejected() int {
	n := 0
	for _, rej := range r.Rejected {
		if rej.Source == "orders" {
			n++
		}
	}
	return n
}

// ProductsRejected is the number of product rows dropped by validation.
func (r *Report) ProductsRejected() int {
	n := 0
	for _, rej := range r.Rejected {
		if rej.Source == "products" {
			n++
		}
	}
	return n
}

// Summary renders a multi-line, operator-facing account of the run.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stage=%s orders_in=%d products_in=%d\n", r.Stage, r.OrdersIn, r.ProductsIn)
	fmt.Fprintf(&b, "facts=%d dim_products=%d dim_dates=%d\n", r.FactRows, r.DimProductRows, r.DimDateRows)

	reasons := make([]string, 0, len(r.Rejections))
	for reason := range r.Rejections {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(&b, "rejected reason=%s count=%d\n", reason, r.Rejections[Reason(reason)])
	}
	if r.DuplicateProducts > 0 {
		fmt.Fprintf(&b, "duplicate_products=%d conflicts=%d\n", r.DuplicateProducts, len(r.Conflicts))
	}
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "conflict product_id=%s kept=%q dropped=%q\n",
			c.ProductID, c.Kept.ProductName, c.Dropped.ProductName)
	}
	return b.String()
}
