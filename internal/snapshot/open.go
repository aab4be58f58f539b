package snapshot

import (
	"context"
	"fmt"
)

// OpenBackend opens the configured backend by name: "sqlite" or "bolt" with
// a file path, "postgres" with a DSN.
func OpenBackend(ctx context.Context, backend, path, dsn string) (Backend, error) {
	switch backend {
	case "sqlite":
		return OpenSQLite(path)
	case "bolt":
		return OpenBolt(path)
	case "postgres":
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
