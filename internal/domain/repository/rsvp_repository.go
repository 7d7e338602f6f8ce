package repository

import (
	"context"

	"github.com/nhea/awards-api/internal/domain/entity"
)

// RSVPStats aggregates attendance for the admin dashboard.
type RSVPStats struct {
	Total        int64 `json:"total_rsvps"`
	Attending    int64 `json:"attending"`
	NotAttending int64 `json:"not_attending"`
	TotalGuests  int64 `json:"total_guests"`
}

// RSVPRepository stores at most one RSVP per user with upsert semantics.
type RSVPRepository interface {
	Upsert(ctx context.Context, r *entity.RSVP) error
	GetByUser(ctx context.Context, userID string) (*entity.RSVP, error)
	Stats(ctx context.Context) (RSVPStats, error)
}
