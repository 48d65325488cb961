package transform

import (
	"errors"
	"fmt"

	"salesdw/internal/schema"
	"salesdw/pkg/records"
)

// Stage names the phases of a run. A run moves through them in order and
// ends at Complete, or at Failed on an unrecoverable condition. There is no
// partial resume; a retry starts over from Idle.
type Stage string

const (
	StageIdle               Stage = "Idle"
	StageValidating         Stage = "Validating"
	StageDerivingKeys       Stage = "DerivingKeys"
	StageBuildingDimensions Stage = "BuildingDimensions"
	StageBuildingFacts      Stage = "BuildingFacts"
	StageComplete           Stage = "Complete"
	StageFailed             Stage = "Failed"
)

var (
	// ErrEmptyInput means a source supplied zero rows.
	ErrEmptyInput = errors.New("transform: empty input")
	// ErrNoValidRows means every row was rejected; an empty warehouse is
	// not a useful refresh, so this aborts instead of truncating the
	// destination.
	ErrNoValidRows = errors.New("transform: no rows survived validation")
)

// Options tunes a run.
type Options struct {
	// DateLayout is an additional OrderDate layout tried after ISO.
	DateLayout string
}

// Result is a completed run: the snapshot to load plus its quality report.
type Result struct {
	Snapshot schema.Snapshot
	Report   *Report
}

// Run executes the full transform pass: validate both sources, derive date
// keys, build dimensions, then build facts. Row-level problems are dropped
// into the report; only empty/exhausted input or an invariant breach
// returns an error. The report in the returned Result accounts for every
// input row either way.
func Run(orders, products []records.Record, opts Options) (*Result, error) {
	report := newReport()
	report.OrdersIn = len(orders)
	report.ProductsIn = len(products)

	if len(orders) == 0 || len(products) == 0 {
		report.Stage = StageFailed
		return &Result{Report: report}, fmt.Errorf("%w: %d order rows, %d product rows",
			ErrEmptyInput, len(orders), len(products))
	}

	report.Stage = StageValidating
	ov := OrderValidator{DateLayout: opts.DateLayout}
	acceptedOrders := make([]schema.Order, 0, len(orders))
	for i, rec := range orders {
		o, rej := ov.Validate(i+1, rec)
		if rej != nil {
			report.reject(*rej)
			continue
		}
		acceptedOrders = append(acceptedOrders, o)
	}

	var pv ProductValidator
	acceptedProducts := make([]schema.Product, 0, len(products))
	for i, rec := range products {
		p, rej := pv.Validate(i+1, rec)
		if rej != nil {
			report.reject(*rej)
			continue
		}
		acceptedProducts = append(acceptedProducts, p)
	}
	report.OrdersAccepted = len(acceptedOrders)
	report.ProductsAccepted = len(acceptedProducts)

	if len(acceptedOrders) == 0 || len(acceptedProducts) == 0 {
		report.Stage = StageFailed
		return &Result{Report: report}, ErrNoValidRows
	}

	// Key derivation is folded into the date-dimension build; the stage is
	// still tracked so failures report where the run stopped.
	report.Stage = StageDerivingKeys

	report.Stage = StageBuildingDimensions
	dimProducts, conflicts, dups := BuildProductDim(acceptedProducts)
	report.Conflicts = conflicts
	report.DuplicateProducts = dups
	dimDates := BuildDateDim(acceptedOrders)

	report.Stage = StageBuildingFacts
	facts, err := BuildFacts(acceptedOrders, dimProducts, dimDates, report)
	if err != nil {
		report.Stage = StageFailed
		return &Result{Report: report}, err
	}
	if len(facts) == 0 {
		report.Stage = StageFailed
		return &Result{Report: report}, ErrNoValidRows
	}

	report.Stage = StageComplete
	report.DimDateRows = len(dimDates)
	report.DimProductRows = len(dimProducts)
	report.FactRows = len(facts)

	return &Result{
		Snapshot: schema.Snapshot{
			DimDates:    dimDates,
			DimProducts: dimProducts,
			Facts:       facts,
		},
		Report: report,
	}, nil
}
