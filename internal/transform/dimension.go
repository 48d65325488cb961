package transform

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"

	"salesdw/internal/schema"
)

// BuildProductDim collapses validated product rows into one DimProduct per
// distinct ProductID. The first occurrence wins. Later occurrences are
// counted as duplicates; when their attributes differ from the kept row the
// duplicate is additionally surfaced as a Conflict. Output preserves
// first-seen order.
func BuildProductDim(products []schema.Product) (dim []schema.DimProduct, conflicts []Conflict, duplicates int) {
	type seen struct {
		product schema.Product
		hash    uint64
	}
	firsts := make(map[string]seen, len(products))

	for _, p := range products {
		h := attrHash(p)
		if first, ok := firsts[p.ProductID]; ok {
			duplicates++
			if first.hash != h {
				conflicts = append(conflicts, Conflict{
					ProductID: p.ProductID,
					Kept:      first.product,
					Dropped:   p,
				})
			}
			continue
		}
		firsts[p.ProductID] = seen{product: p, hash: h}
		dim = append(dim, schema.DimProduct{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Category:    p.Category,
			Cost:        p.Cost,
		})
	}
	return dim, conflicts, duplicates
}

// attrHash fingerprints the non-key attributes of a product row so that
// duplicate occurrences can be compared without retaining every row.
func attrHash(p schema.Product) uint64 {
	var b strings.Builder
	b.WriteString(p.ProductName)
	b.WriteByte('\x1f')
	b.WriteString(p.Category)
	b.WriteByte('\x1f')
	b.WriteString(strconv.FormatFloat(p.Cost, 'g', -1, 64))
	return xxh3.HashString(b.String())
}

// BuildDateDim emits one DimDate row per distinct calendar date appearing in
// the accepted orders, sorted ascending by DateKey.
func BuildDateDim(orders []schema.Order) []schema.DimDate {
	byKey := make(map[int]schema.DimDate, len(orders))
	for _, o := range orders {
		parts := DeriveDateKey(o.OrderDate)
		if _, ok := byKey[parts.Key]; ok {
			continue
		}
		byKey[parts.Key] = schema.DimDate{
			DateKey:   parts.Key,
			OrderDate: o.OrderDate,
			Year:      parts.Year,
			Month:     parts.Month,
			Day:       parts.Day,
		}
	}

	dim := make([]schema.DimDate, 0, len(byKey))
	for _, d := range byKey {
		dim = append(dim, d)
	}
	sort.Slice(dim, func(i, j int) bool { return dim[i].DateKey < dim[j].DateKey })
	return dim
}
