package main

import (
	"context"
	"errors"
	"testing"

	"salesdw/internal/config"
	"salesdw/internal/extract"
	"salesdw/internal/schema"
	"salesdw/internal/storage"
	"salesdw/internal/transform"
	"salesdw/pkg/records"
)

// fakeRepo captures the snapshot handed to Replace so tests can assert on
// what the pipeline would load.
type fakeRepo struct {
	execs    []string
	replaced []schema.Snapshot

	replaceErr error
	closed     bool
}

func (f *fakeRepo) Exec(ctx context.Context, sql string) error {
	f.execs = append(f.execs, sql)
	return nil
}

func (f *fakeRepo) Replace(ctx context.Context, snap schema.Snapshot) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = append(f.replaced, snap)
	return nil
}

func (f *fakeRepo) Close() { f.closed = true }

func testOrders() []records.Record {
	return []records.Record{
		{"OrderID": "1001", "CustomerID": "C001", "ProductID": "P1", "OrderDate": "2024-01-15", "Quantity": "2", "Price": "12.00"},
		{"OrderID": "1002", "CustomerID": "C002", "ProductID": "P2", "OrderDate": "2024-01-16", "Quantity": "4", "Price": "24.00"},
	}
}

func testProducts() []records.Record {
	return []records.Record{
		{"ProductID": "P1", "ProductName": "Mouse", "Category": "Peripherals", "Cost": "10.00"},
		{"ProductID": "P2", "ProductName": "Keyboard", "Category": "Peripherals", "Cost": "20.00"},
	}
}

// withSeams swaps the package-level test seams for the duration of one test.
func withSeams(t *testing.T, repo storage.Repository, repoErr error, orders, products []records.Record, readErr error) {
	t.Helper()

	origOpen, origRead := openRepositoryFn, readSourcesFn
	t.Cleanup(func() {
		openRepositoryFn, readSourcesFn = origOpen, origRead
	})

	openRepositoryFn = func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		if repoErr != nil {
			return nil, repoErr
		}
		return repo, nil
	}
	readSourcesFn = func(ctx context.Context, s extract.Sources) ([]records.Record, []records.Record, error) {
		if readErr != nil {
			return nil, nil, readErr
		}
		return orders, products, nil
	}
}

func Test_run_LoadsSnapshot(t *testing.T) {
	repo := &fakeRepo{}
	withSeams(t, repo, nil, testOrders(), testProducts(), nil)

	// EnsureWarehouse dispatches by kind, so the fake kind needs a
	// bootstrapper too.
	storage.RegisterDDL("fake", func(ctx context.Context, r storage.Repository) error {
		return r.Exec(ctx, "CREATE TABLE fake")
	})

	spec := config.Pipeline{Job: "test"}
	spec.Storage.Kind = "fake"

	if err := run(context.Background(), spec); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(repo.replaced) != 1 {
		t.Fatalf("Replace calls = %d, want 1", len(repo.replaced))
	}
	snap := repo.replaced[0]
	if got, want := len(snap.Facts), 2; got != want {
		t.Errorf("facts = %d, want %d", got, want)
	}
	if got, want := len(snap.DimProducts), 2; got != want {
		t.Errorf("dim products = %d, want %d", got, want)
	}
	if got, want := len(snap.DimDates), 2; got != want {
		t.Errorf("dim dates = %d, want %d", got, want)
	}
	if len(repo.execs) == 0 {
		t.Error("DDL bootstrap did not run before Replace")
	}
	if !repo.closed {
		t.Error("repository was not closed")
	}
}

func Test_run_ExtractFailureAborts(t *testing.T) {
	repo := &fakeRepo{}
	readErr := errors.New("no such file")
	withSeams(t, repo, nil, nil, nil, readErr)

	spec := config.Pipeline{Job: "test"}
	spec.Storage.Kind = "fake"

	err := run(context.Background(), spec)
	if !errors.Is(err, readErr) {
		t.Fatalf("run error = %v, want wrapped %v", err, readErr)
	}
	if len(repo.replaced) != 0 {
		t.Errorf("Replace was called after extract failure")
	}
}

func Test_run_EmptyInputAborts(t *testing.T) {
	repo := &fakeRepo{}
	withSeams(t, repo, nil, testOrders(), nil, nil)

	spec := config.Pipeline{Job: "test"}
	spec.Storage.Kind = "fake"

	err := run(context.Background(), spec)
	if !errors.Is(err, transform.ErrEmptyInput) {
		t.Fatalf("run error = %v, want %v", err, transform.ErrEmptyInput)
	}
	if len(repo.replaced) != 0 {
		t.Errorf("Replace was called on empty input")
	}
}

func Test_run_ReplaceFailurePropagates(t *testing.T) {
	repo := &fakeRepo{replaceErr: errors.New("disk full")}
	withSeams(t, repo, nil, testOrders(), testProducts(), nil)

	storage.RegisterDDL("fake", func(ctx context.Context, r storage.Repository) error {
		return nil
	})

	spec := config.Pipeline{Job: "test"}
	spec.Storage.Kind = "fake"

	err := run(context.Background(), spec)
	if !errors.Is(err, repo.replaceErr) {
		t.Fatalf("run error = %v, want wrapped %v", err, repo.replaceErr)
	}
	if !repo.closed {
		t.Error("repository was not closed after failure")
	}
}

func Test_run_OpenFailurePropagates(t *testing.T) {
	openErr := errors.New("bad dsn")
	withSeams(t, nil, openErr, testOrders(), testProducts(), nil)

	spec := config.Pipeline{Job: "test"}
	spec.Storage.Kind = "fake"

	err := run(context.Background(), spec)
	if !errors.Is(err, openErr) {
		t.Fatalf("run error = %v, want wrapped %v", err, openErr)
	}
}
