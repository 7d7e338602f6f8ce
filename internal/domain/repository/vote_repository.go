package repository

import (
	"context"

	"github.com/nhea/awards-api/internal/domain/entity"
)

// CategoryVotes is a per-category tally row.
type CategoryVotes struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	VoteCount    int64  `json:"vote_count"`
}

// NomineeVotes is a leaderboard row. Ties on VoteCount are broken by the
// earliest cast vote among the tied nominees.
type NomineeVotes struct {
	NominationID string `json:"nomination_id"`
	NomineeName  string `json:"nominee_name"`
	CategoryName string `json:"category_name"`
	VoteCount    int64  `json:"vote_count"`
}

// VoteRepository is the append-only vote ledger. Insert is the single write
// and must be atomic with respect to concurrent casts for the same
// (user, category): the storage layer's unique constraint is the source of
// truth, and a violation surfaces as voting.ErrAlreadyVoted.
type VoteRepository interface {
	Insert(ctx context.Context, v *entity.Vote) error
	ListByUser(ctx context.Context, userID string) ([]entity.Vote, error)
	CountTotal(ctx context.Context) (int64, error)
	CountUniqueVoters(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]CategoryVotes, error)
	TopNominees(ctx context.Context, limit int) ([]NomineeVotes, error)
}
