package entity

import "time"

// Nomination review states. Only approved nominations are votable.
const (
	NominationPending  = "PENDING"
	NominationApproved = "APPROVED"
	NominationRejected = "REJECTED"
)

// Nomination is a candidate submitted for a category, subject to admin review.
type Nomination struct {
	ID            string
	CategoryID    string
	NomineeName   string
	NomineeEmail  string
	Organization  string
	Reason        string
	Status        string
	SubmittedByID string
	ReviewedByID  string
	ReviewedAt    *time.Time
	CreatedAt     time.Time

	// Joined display fields, populated by list queries only.
	CategoryName    string
	SubmittedByName string
}
