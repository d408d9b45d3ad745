package db

import "testing"

func TestOpen_InMemory(t *testing.T) {
	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	var count int
	err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='audit_log'").Scan(&count)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected audit_log table, found %d", count)
	}

	// Schema application is idempotent.
	if err := InitSchema(database); err != nil {
		t.Errorf("second InitSchema failed: %v", err)
	}
}

func TestIsMemoryDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{":memory:", true},
		{DefaultDSN, true},
		{"file:/tmp/ledger.db", false},
		{"ledger.db", false},
	}

	for _, tt := range tests {
		if got := IsMemoryDSN(tt.dsn); got != tt.want {
			t.Errorf("IsMemoryDSN(%q) = %v, want %v", tt.dsn, got, tt.want)
		}
	}
}
