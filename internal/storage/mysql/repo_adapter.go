// This file wires the MySQL backend into the storage factory.
package mysql

import (
	"context"

	"salesdw/internal/storage"
)

// newRepository is a test hook pointing at NewRepository by default.
var newRepository = NewRepository

var _ storage.Repository = (*Repository)(nil)

func init() {
	storage.Register("mysql", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		return newRepository(ctx, cfg.DSN)
	})
	storage.RegisterDDL("mysql", EnsureWarehouse)
}
