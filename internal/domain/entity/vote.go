package entity

import "time"

// Vote is one row in the append-only vote ledger.
// At most one vote exists per (UserID, CategoryID); the votes table
// enforces this with a unique index.
type Vote struct {
	ID           string
	UserID       string
	CategoryID   string
	NominationID string
	IPAddress    string
	CastAt       time.Time

	// Joined display fields, populated by list queries only.
	CategoryName string
	NomineeName  string
}
