// This file wires the pipeline end-to-end: CSV extraction, the transform
// pass, and the replace load into the configured storage backend. The CLI
// layer stays thin: it depends only on the storage-agnostic Repository
// interface and never imports database drivers directly.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"salesdw/internal/config"
	"salesdw/internal/extract"
	"salesdw/internal/metrics"
	"salesdw/internal/storage"
	"salesdw/internal/transform"
	"salesdw/pkg/records"
)

// maxRejectionLogs caps per-row rejection logging; the report still counts
// every row.
const maxRejectionLogs = 10

// Function variables used to introduce test seams.
// In production these point to real implementations; tests can override them.
var (
	openRepositoryFn = func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		return storage.Open(ctx, cfg)
	}

	readSourcesFn = func(ctx context.Context, s extract.Sources) (orders, products []records.Record, err error) {
		return s.Read(ctx)
	}
)

// run executes one full refresh: extract both CSV sources, transform them
// into a star-schema snapshot, and atomically replace the warehouse
// contents. Any error leaves the previous warehouse state untouched.
func run(ctx context.Context, spec config.Pipeline) error {
	job := spec.Job
	if job == "" {
		job = "salesdw"
	}

	// Extract.
	extractStart := time.Now()
	orders, products, err := readSourcesFn(ctx, extract.Sources{
		Orders:   spec.Source.Orders,
		Products: spec.Source.Products,
	})
	metrics.RecordStage(job, "extract", err, time.Since(extractStart))
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	log.Printf("extract: orders=%s products=%s",
		humanize.Comma(int64(len(orders))), humanize.Comma(int64(len(products))))
	metrics.RecordRows(job, "orders_in", int64(len(orders)))
	metrics.RecordRows(job, "products_in", int64(len(products)))

	// Transform.
	transformStart := time.Now()
	res, err := transform.Run(orders, products, transform.Options{
		DateLayout: spec.Transform.DateLayout,
	})
	metrics.RecordStage(job, "transform", err, time.Since(transformStart))
	if err != nil {
		if res != nil {
			logReport(res.Report)
		}
		return fmt.Errorf("transform: %w", err)
	}
	logReport(res.Report)

	rep := res.Report
	metrics.RecordRows(job, "orders_rejected", int64(rep.OrdersRejected()))
	metrics.RecordRows(job, "products_rejected", int64(rep.ProductsRejected()))
	metrics.RecordRows(job, "duplicate_products", int64(rep.DuplicateProducts))
	metrics.RecordRows(job, "facts_loaded", int64(rep.FactRows))

	// Load.
	loadStart := time.Now()
	err = load(ctx, spec, res)
	metrics.RecordStage(job, "load", err, time.Since(loadStart))
	if err != nil {
		return err
	}
	metrics.RecordLoad(job)

	log.Printf(
		"summary: facts=%s dim_products=%s dim_dates=%s orders_rejected=%s products_rejected=%s",
		humanize.Comma(int64(rep.FactRows)),
		humanize.Comma(int64(rep.DimProductRows)),
		humanize.Comma(int64(rep.DimDateRows)),
		humanize.Comma(int64(rep.OrdersRejected())),
		humanize.Comma(int64(rep.ProductsRejected())),
	)
	return nil
}

// load opens the configured backend, ensures the warehouse tables exist, and
// replaces their contents with the snapshot in one transaction.
func load(ctx context.Context, spec config.Pipeline, res *transform.Result) error {
	repo, err := openRepositoryFn(ctx, storage.Config{
		Kind: spec.Storage.Kind,
		DSN:  spec.Storage.DB.DSN,
	})
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer repo.Close()

	if err := storage.EnsureWarehouse(ctx, spec.Storage.Kind, repo); err != nil {
		return fmt.Errorf("storage: ensure warehouse: %w", err)
	}
	if err := repo.Replace(ctx, res.Snapshot); err != nil {
		return fmt.Errorf("storage: replace: %w", err)
	}
	return nil
}

// logReport prints the report's per-reason account plus row-level findings:
// a capped sample of rejections and every dimension conflict.
func logReport(rep *transform.Report) {
	for _, line := range strings.Split(strings.TrimSpace(rep.Summary()), "\n") {
		log.Printf("report: %s", line)
	}
	for i, rej := range rep.Rejected {
		if i == maxRejectionLogs {
			log.Printf("... additional rejections suppressed (%d total) ...", len(rep.Rejected))
			break
		}
		log.Printf("reject source=%s line=%d reason=%s: %s", rej.Source, rej.Line, rej.Reason, rej.Detail)
	}
}
