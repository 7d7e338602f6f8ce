package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	repo "github.com/nhea/awards-api/internal/domain/repository"
)

// NominationService handles public submission and admin review.
type NominationService struct {
	Nominations repo.NominationRepository
	Categories  repo.CategoryRepository
	Audit       repo.AuditRepository
	Logger      *logrus.Logger
	Now         func() time.Time
}

func NewNominationService(noms repo.NominationRepository, cats repo.CategoryRepository,
	audit repo.AuditRepository, logger *logrus.Logger) *NominationService {
	return &NominationService{
		Nominations: noms,
		Categories:  cats,
		Audit:       audit,
		Logger:      logger,
		Now:         time.Now,
	}
}

type SubmitNominationInput struct {
	CategoryID   string
	NomineeName  string
	NomineeEmail string
	Organization string
	Reason       string
}

// Submit creates a pending nomination. The category must exist; the ≥100 char
// reason requirement is enforced at the binding layer.
func (s *NominationService) Submit(ctx context.Context, userID string, in SubmitNominationInput, ip string) (*entity.Nomination, error) {
	if _, err := s.Categories.GetByID(ctx, in.CategoryID); err != nil {
		if isNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	n := &entity.Nomination{
		CategoryID:    in.CategoryID,
		NomineeName:   in.NomineeName,
		NomineeEmail:  in.NomineeEmail,
		Organization:  in.Organization,
		Reason:        in.Reason,
		SubmittedByID: userID,
	}
	if err := s.Nominations.Create(ctx, n); err != nil {
		return nil, err
	}
	s.audit(ctx, userID, "NOMINATION_SUBMITTED", map[string]any{"nomination_id": n.ID}, ip)
	return n, nil
}

// List returns nominations for the caller. Public callers only ever see
// approved rows, whatever filter they ask for.
func (s *NominationService) List(ctx context.Context, caller *entity.User, f repo.NominationFilter) ([]entity.Nomination, error) {
	if !caller.IsAdmin() {
		f.Status = entity.NominationApproved
	}
	return s.Nominations.List(ctx, f)
}

// Review transitions a nomination to APPROVED or REJECTED and stamps the
// reviewer. Status values outside those two are rejected.
func (s *NominationService) Review(ctx context.Context, reviewerID, nominationID, status, ip string) (*entity.Nomination, error) {
	if status != entity.NominationApproved && status != entity.NominationRejected {
		return nil, ErrInvalidStatus
	}
	n, err := s.Nominations.Review(ctx, nominationID, status, reviewerID, s.Now())
	if err != nil {
		return nil, err
	}
	s.audit(ctx, reviewerID, "NOMINATION_REVIEWED", map[string]any{"nomination_id": n.ID, "status": status}, ip)
	return n, nil
}

func (s *NominationService) audit(ctx context.Context, userID, action string, details map[string]any, ip string) {
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
