package postgres

import (
	"context"
	"strings"
	"testing"
)

func TestSchema_Idempotent(t *testing.T) {
	for _, stmt := range []string{
		"CREATE TABLE IF NOT EXISTS lists",
		"CREATE TABLE IF NOT EXISTS tasks",
		"ON CONFLICT (name) DO NOTHING",
	} {
		if !strings.Contains(schema, stmt) {
			t.Errorf("schema missing %q", stmt)
		}
	}
}

func TestSchema_SeedsInbox(t *testing.T) {
	if !strings.Contains(schema, "'inbox', TRUE, FALSE, 0") {
		t.Error("expected inbox seeded as a non-deletable system list at position 0")
	}
}

func TestConnect_RequiresDSN(t *testing.T) {
	if _, err := Connect(context.Background(), Config{}); err == nil {
		t.Error("expected error for empty DSN")
	}
}
