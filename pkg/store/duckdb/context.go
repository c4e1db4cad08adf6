package duckdb

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTransaction returns a context whose store operations run inside tx
// instead of the shared connection pool.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTransaction reports the transaction carried by ctx, or nil when the
// caller did not open one.
func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
