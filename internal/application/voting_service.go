package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	repo "github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/internal/domain/voting"
)

// VoteService owns the cast path and the read-side tallies. Every cast
// re-reads the settings singleton (no caching), checks nominee eligibility,
// then appends to the ledger; the ledger's unique index is what actually
// serializes concurrent casts for the same user and category.
type VoteService struct {
	Votes       repo.VoteRepository
	Nominations repo.NominationRepository
	Categories  repo.CategoryRepository
	Settings    repo.SettingsRepository
	Audit       repo.AuditRepository
	Logger      *logrus.Logger

	// Now is the clock used for window evaluation; tests override it.
	Now func() time.Time
}

func NewVoteService(votes repo.VoteRepository, noms repo.NominationRepository, cats repo.CategoryRepository,
	settings repo.SettingsRepository, audit repo.AuditRepository, logger *logrus.Logger) *VoteService {
	return &VoteService{
		Votes:       votes,
		Nominations: noms,
		Categories:  cats,
		Settings:    settings,
		Audit:       audit,
		Logger:      logger,
		Now:         time.Now,
	}
}

// Cast records one vote for userID in categoryID. Denials carry a
// voting.Error code; any other error is an infrastructure failure.
func (s *VoteService) Cast(ctx context.Context, userID, categoryID, nominationID, ip string) (*entity.Vote, error) {
	settings, err := s.Settings.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if err := voting.EvaluateWindow(settings, s.Now()); err != nil {
		return nil, err
	}

	if _, err := s.Categories.GetByID(ctx, categoryID); err != nil {
		if isNotFound(err) {
			return nil, voting.ErrCategoryNotFound
		}
		return nil, err
	}

	// Not-found, wrong category and unapproved all collapse into one code so
	// voters cannot probe moderation state.
	if _, err := s.Nominations.GetApproved(ctx, nominationID, categoryID); err != nil {
		if isNotFound(err) {
			return nil, voting.ErrNominationNotEligible
		}
		return nil, err
	}

	v := &entity.Vote{
		UserID:       userID,
		CategoryID:   categoryID,
		NominationID: nominationID,
		IPAddress:    ip,
	}
	if err := s.Votes.Insert(ctx, v); err != nil {
		return nil, err
	}

	s.audit(ctx, userID, "VOTE_CAST", map[string]any{"vote_id": v.ID, "category_id": categoryID}, ip)
	return v, nil
}

// MyVotes returns the caller's votes across all categories.
func (s *VoteService) MyVotes(ctx context.Context, userID string) ([]entity.Vote, error) {
	return s.Votes.ListByUser(ctx, userID)
}

// Analytics is the admin aggregate over the vote ledger.
type Analytics struct {
	TotalVotes      int64                  `json:"total_votes"`
	UniqueVoters    int64                  `json:"unique_voters"`
	VotesByCategory []repo.CategoryVotes   `json:"votes_by_category"`
	TopNominees     []repo.NomineeVotes    `json:"top_nominees"`
}

const topNomineeLimit = 10

func (s *VoteService) Analytics(ctx context.Context) (*Analytics, error) {
	total, err := s.Votes.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	voters, err := s.Votes.CountUniqueVoters(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.Votes.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.Votes.TopNominees(ctx, topNomineeLimit)
	if err != nil {
		return nil, err
	}
	return &Analytics{
		TotalVotes:      total,
		UniqueVoters:    voters,
		VotesByCategory: byCategory,
		TopNominees:     top,
	}, nil
}

func (s *VoteService) audit(ctx context.Context, userID, action string, details map[string]any, ip string) {
	if s.Audit == nil {
		return
	}
	err := s.Audit.Insert(ctx, &entity.AuditEntry{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	})
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}
