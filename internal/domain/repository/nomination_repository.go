package repository

import (
	"context"
	"time"

	"github.com/nhea/awards-api/internal/domain/entity"
)

// NominationFilter narrows List results. Empty fields mean "any".
type NominationFilter struct {
	Status     string
	CategoryID string
}

// NominationRepository defines nomination persistence and review.
type NominationRepository interface {
	Create(ctx context.Context, n *entity.Nomination) error
	GetByID(ctx context.Context, id string) (*entity.Nomination, error)

	// GetApproved returns the nomination only when it exists, belongs to
	// categoryID, and is approved. Everything else is a not-found, so review
	// state never leaks to voters.
	GetApproved(ctx context.Context, id, categoryID string) (*entity.Nomination, error)

	List(ctx context.Context, f NominationFilter) ([]entity.Nomination, error)
	Review(ctx context.Context, id, status, reviewerID string, reviewedAt time.Time) (*entity.Nomination, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
