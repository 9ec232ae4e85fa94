package interfaces

import (
	"github.com/mealmajor/accountd/internal/models"
)

// UserStore is the authoritative ordered collection of user records plus its
// persistence lifecycle. Implementations must serialize all access
// internally; the load/mutate/save pattern is not safe under concurrent
// writers otherwise.
type UserStore interface {
	// Load hydrates the collection from the persisted file, replacing any
	// in-memory state. A missing file yields an empty collection; a parse
	// failure is logged and also yields an empty collection.
	Load()

	// Save persists the full collection, atomically from a reader's
	// perspective. On failure the in-memory state stays authoritative.
	Save() error

	// GetUser returns a copy of the record with the exact username.
	// Absence is a normal outcome, not an error.
	GetUser(username string) (models.Record, bool)

	// AddUser migrates and appends the record. A duplicate username is a
	// silent no-op.
	AddUser(record models.Record)

	// UpdateUser merges the patch into the named record and re-migrates it.
	// Reports false when no such user exists.
	UpdateUser(username string, patch models.Record) bool

	// RemoveUser deletes the record only when both the username and the
	// password match exactly. Silent no-op otherwise.
	RemoveUser(username, password string)

	// AddAttribute extends the schema template and retroactively migrates
	// every record so older records gain the new attribute.
	AddAttribute(key, defaultValue string) error

	// Count returns the number of records currently held.
	Count() int
}
