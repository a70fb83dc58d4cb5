package models

import "time"

// AuditLog represents an append-only audit row. Changes is the raw JSONB
// payload; (un)marshalling happens in the mapping layer.
type AuditLog struct {
	AuditID   string    `db:"audit_id"`
	UserID    string    `db:"user_id"`
	Action    string    `db:"action"`
	Entity    string    `db:"entity"`
	EntityID  string    `db:"entity_id"`
	Changes   []byte    `db:"changes"`
	Timestamp time.Time `db:"timestamp"`
}
