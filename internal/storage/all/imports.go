// Package all registers every storage backend with the factory. Binaries
// blank-import it once; the pipeline config picks which backend to use.
package all

import (
	_ "salesdw/internal/storage/mssql"
	_ "salesdw/internal/storage/mysql"
	_ "salesdw/internal/storage/postgres"
	_ "salesdw/internal/storage/sqlite"
)
