// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/hotelres/internal/ports/secondary"
)

// AuditRepository implements secondary.AuditLog with SQLite.
type AuditRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewAuditRepository creates a new SQLite audit repository.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db, now: time.Now}
}

// Append persists a new ledger entry.
func (r *AuditRepository) Append(ctx context.Context, record *secondary.AuditRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	createdAt := r.now().UTC()
	if record.CreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339, record.CreatedAt)
		if err != nil {
			return fmt.Errorf("invalid audit timestamp %q: %w", record.CreatedAt, err)
		}
		createdAt = parsed
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO audit_log (id, action, reservation_id, actor, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		record.ID, record.Action, nullString(record.ReservationID), nullString(record.Actor), nullString(record.Detail), createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

// List retrieves the most recent entries, oldest first.
func (r *AuditRepository) List(ctx context.Context, limit int) ([]*secondary.AuditRecord, error) {
	query := `SELECT id, action, reservation_id, actor, detail, created_at FROM (
		SELECT seq, id, action, reservation_id, actor, detail, created_at FROM audit_log ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	query += ") ORDER BY seq ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var records []*secondary.AuditRecord
	for rows.Next() {
		var (
			reservationID sql.NullString
			actor         sql.NullString
			detail        sql.NullString
			createdAt     time.Time
		)

		record := &secondary.AuditRecord{}
		if err := rows.Scan(&record.ID, &record.Action, &reservationID, &actor, &detail, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}

		record.ReservationID = reservationID.String
		record.Actor = actor.String
		record.Detail = detail.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		records = append(records, record)
	}

	return records, rows.Err()
}

// CountByAction returns the number of entries per action.
func (r *AuditRepository) CountByAction(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT action, COUNT(*) FROM audit_log GROUP BY action")
	if err != nil {
		return nil, fmt.Errorf("failed to count audit entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			action string
			n      int
		)
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("failed to scan audit count: %w", err)
		}
		counts[action] = n
	}

	return counts, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Ensure AuditRepository implements the interface.
var _ secondary.AuditLog = (*AuditRepository)(nil)
