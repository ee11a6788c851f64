package db

import "database/sql"

// Execer is the slice of *sql.DB / *sql.Tx the repositories need, so the
// same statement helpers run standalone or inside a transaction.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
