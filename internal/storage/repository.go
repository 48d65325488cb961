// Package storage contains the storage-agnostic warehouse contracts and the
// backend factory. Concrete backends (sqlite, postgres, mysql, mssql)
// register themselves at init time; callers select one by kind and interact
// only with the Repository interface.
package storage

import (
	"context"
	"fmt"
	"sync"

	"salesdw/internal/schema"
)

// Config selects and configures a warehouse backend.
type Config struct {
	// Kind names a registered backend, e.g. "sqlite".
	Kind string
	// DSN is passed to the backend driver unchanged.
	DSN string
}

// Repository is a destination warehouse. Replace must be all-or-nothing:
// either the snapshot fully replaces the previous contents of all three
// tables, or the previous contents stay untouched. Partial loads must never
// be visible to readers.
type Repository interface {
	// Exec runs an arbitrary statement, typically DDL.
	Exec(ctx context.Context, sql string) error
	// Replace atomically swaps the warehouse contents for the snapshot.
	Replace(ctx context.Context, snap schema.Snapshot) error
	Close()
}

// Factory constructs a Repository for a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	regMu     sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) the factory for a backend kind. It is
// called from backend packages' init functions.
func Register(kind string, f Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	factories[kind] = f
}

// Open constructs the Repository registered for cfg.Kind.
func Open(ctx context.Context, cfg Config) (Repository, error) {
	regMu.RLock()
	f, ok := factories[cfg.Kind]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no storage backend registered for kind=%q", cfg.Kind)
	}
	return f(ctx, cfg)
}
