package session

import (
	"context"
	"time"
)

// SessionRepository defines data access for attendance session rows. The
// store is bulk-replaced on import and read-only everywhere else; there is no
// per-row update.
type SessionRepository interface {
	// ListAll retrieves every session row, newest date first.
	ListAll(ctx context.Context) ([]Session, error)

	// ListFiltered retrieves rows matching an optional year and month set,
	// newest date first. The predicate pushed into SQL must agree exactly
	// with the in-memory filter the aggregation engine applies.
	ListFiltered(ctx context.Context, year *int, months []time.Month) ([]Session, error)

	// ReplaceAll deletes every row and inserts the given ones inside a single
	// transaction, returning the inserted count. Readers observe either the
	// old contents or the new, never the gap in between.
	ReplaceAll(ctx context.Context, sessions []Session) (int64, error)

	// DeleteAll removes every row.
	DeleteAll(ctx context.Context) error
}
