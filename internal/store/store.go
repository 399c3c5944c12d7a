// Package store is the durable home of all game processing state: the play
// audit log (which doubles as the dedup index), game states, player stat
// ledgers, and detected patterns. All mutations are either conditional
// inserts or atomic increments, so the pipeline stays correct under
// duplicate and concurrent delivery without external locking.
package store

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// Store wraps the Postgres connection pool.
type Store struct {
	db *sql.DB
}

// New creates a store over an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}
