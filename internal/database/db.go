package database

import "context"

// DB is the minimal query surface the repositories need. The catalog is
// read-only from this service's perspective.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
