package entity

import "time"

// AuditEntry is a best-effort activity record. Writing one must never
// fail the operation being audited.
type AuditEntry struct {
	ID        string
	UserID    string
	Action    string
	Details   map[string]any
	IPAddress string
	CreatedAt time.Time
}
