package repository

import (
	"context"
	"time"

	"github.com/nhea/awards-api/internal/domain/entity"
)

// SettingsUpdate carries the admin-editable fields of the settings singleton.
// Nil pointers leave the column untouched.
type SettingsUpdate struct {
	VotingEnabled    *bool
	VotingStartDate  *time.Time
	VotingEndDate    *time.Time
	ResultsAnnounced *bool
}

// SettingsRepository manages the event settings singleton. GetOrCreate is the
// read-through accessor used on every cast: no caching across requests, so an
// admin toggle is visible to the very next vote attempt.
type SettingsRepository interface {
	GetOrCreate(ctx context.Context) (*entity.EventSettings, error)
	Update(ctx context.Context, upd SettingsUpdate) (*entity.EventSettings, error)
}
