// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// Audit actions recorded in the reservation ledger.
const (
	AuditActionAdd    = "add"
	AuditActionCancel = "cancel"
	AuditActionReject = "reject"
)

// AuditRecord is one append-only ledger entry.
type AuditRecord struct {
	ID            string
	Action        string
	ReservationID string // empty for rejected adds
	Actor         string
	Detail        string
	CreatedAt     string
}

// AuditLog defines the secondary port for the reservation ledger.
type AuditLog interface {
	// Append records a new entry. ID and CreatedAt are assigned by the adapter
	// when empty.
	Append(ctx context.Context, record *AuditRecord) error

	// List returns the most recent entries, oldest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*AuditRecord, error)

	// CountByAction returns how many entries exist per action.
	CountByAction(ctx context.Context) (map[string]int, error)
}
