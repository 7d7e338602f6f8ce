package entity

import "time"

// RSVP records event attendance, at most one per user (upsert semantics).
type RSVP struct {
	ID             string
	UserID         string
	Attending      bool
	NumberOfGuests int
	UpdatedAt      time.Time
}
