package storage

import (
	"context"
	"fmt"
	"sync"
)

// DDLBootstrapper creates the three warehouse tables for one backend if
// they do not exist yet. Backends register their implementation for a given
// kind at init time, next to their Repository factory.
type DDLBootstrapper func(ctx context.Context, repo Repository) error

var (
	ddlMu  sync.RWMutex
	ddlFns = map[string]DDLBootstrapper{}
)

// RegisterDDL registers (or replaces) a DDLBootstrapper for a backend kind.
func RegisterDDL(kind string, fn DDLBootstrapper) {
	ddlMu.Lock()
	defer ddlMu.Unlock()
	ddlFns[kind] = fn
}

// EnsureWarehouse invokes the DDL bootstrapper registered for the kind.
// Bootstrapping is idempotent and runs before Replace, outside its
// transaction: engines such as MySQL autocommit DDL, so mixing it into the
// replace transaction would break the all-or-nothing guarantee.
func EnsureWarehouse(ctx context.Context, kind string, repo Repository) error {
	ddlMu.RLock()
	fn, ok := ddlFns[kind]
	ddlMu.RUnlock()
	if !ok {
		return fmt.Errorf("no DDL bootstrapper registered for kind=%q", kind)
	}
	return fn(ctx, repo)
}
