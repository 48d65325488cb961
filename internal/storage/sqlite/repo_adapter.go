// This file wires the SQLite backend into the storage factory so callers
// never import this package directly; registration happens in init.
package sqlite

import (
	"context"

	"salesdw/internal/storage"
)

// newRepository is a test hook pointing at NewRepository by default.
var newRepository = NewRepository

var _ storage.Repository = (*Repository)(nil)

func init() {
	storage.Register("sqlite", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		return newRepository(ctx, cfg.DSN)
	})
	storage.RegisterDDL("sqlite", EnsureWarehouse)
}
