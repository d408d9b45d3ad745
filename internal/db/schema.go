package db

import "database/sql"

// SchemaSQL is the complete schema for the reservation ledger.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it via
// GetSchemaSQL() instead of hardcoding CREATE TABLE statements.
const SchemaSQL = `
-- Audit log (append-only reservation ledger)
CREATE TABLE IF NOT EXISTS audit_log (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	action TEXT NOT NULL CHECK(action IN ('add', 'cancel', 'reject')),
	reservation_id TEXT,
	actor TEXT,
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_audit_log_reservation ON audit_log(reservation_id);
CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
`

// InitSchema creates the database schema. It is idempotent.
func InitSchema(database *sql.DB) error {
	_, err := database.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
