// Package store regroupe l'accès aux tables relationnelles (users, products).
// Les types acceptent un DBTX pour fonctionner indifféremment sur *sql.DB ou *sql.Tx.
package store

import (
	"context"
	"database/sql"
	"errors"
)

// DBTX est le sous-ensemble de database/sql utilisé par les stores.
// *sql.DB et *sql.Tx le satisfont tous les deux.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)
