package entity

import "time"

// EventSettings is the singleton row gating all votes: the admin-controlled
// enable flag plus optional start/end of the voting window.
type EventSettings struct {
	ID               string
	VotingEnabled    bool
	VotingStartDate  *time.Time
	VotingEndDate    *time.Time
	ResultsAnnounced bool
	UpdatedAt        time.Time
}
