// Package history provides the per-user, append-only prediction event log.
package history

import (
	"context"
	"time"

	"medipulse/models"

	"gorm.io/gorm"
)

// Store is the typed boundary over the history table. Records are append
// only: no operation mutates an existing record, and only the owning
// username's records can be listed or cleared.
type Store interface {
	// Append inserts one record. Concurrent appends are independent.
	Append(ctx context.Context, rec *models.HistoryRecord) error

	// List returns up to limit records for the user, newest first by
	// creation instant. A user with no history gets an empty slice,
	// never an error.
	List(ctx context.Context, username string, limit int) ([]models.HistoryRecord, error)

	// Clear deletes all records for the user. Clearing an empty history
	// succeeds silently.
	Clear(ctx context.Context, username string) error

	// PurgeOlderThan deletes records created before cutoff across all
	// users and returns the number removed. Used by the retention
	// scheduler.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Records is the global history store, set during startup.
var Records Store

// Init wires the global store to the database connection.
func Init(db *gorm.DB) {
	Records = NewGormStore(db)
}
