package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	repo "github.com/nhea/awards-api/internal/domain/repository"
)

func newNominationService() (*NominationService, *fakeNominationRepo, *fakeCategoryRepo) {
	noms := newFakeNominationRepo()
	cats := newFakeCategoryRepo()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewNominationService(noms, cats, &fakeAuditRepo{}, logger), noms, cats
}

func TestSubmitNomination(t *testing.T) {
	svc, _, cats := newNominationService()
	catID := cats.add("Best Nurse")

	n, err := svc.Submit(context.Background(), "user-1", SubmitNominationInput{
		CategoryID:  catID,
		NomineeName: "Jane Doe",
		Reason:      "A thoroughly deserving nominee.",
	}, "10.0.0.1")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if n.Status != entity.NominationPending {
		t.Errorf("status = %q, want PENDING", n.Status)
	}
	if n.SubmittedByID != "user-1" {
		t.Errorf("submitted by = %q, want user-1", n.SubmittedByID)
	}
}

func TestSubmitNominationUnknownCategory(t *testing.T) {
	svc, _, _ := newNominationService()

	_, err := svc.Submit(context.Background(), "user-1", SubmitNominationInput{
		CategoryID:  "nope",
		NomineeName: "Jane Doe",
		Reason:      "x",
	}, "")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("Submit error = %v, want ErrCategoryNotFound", err)
	}
}

func TestListForcesApprovedForPublicCallers(t *testing.T) {
	svc, noms, cats := newNominationService()
	catID := cats.add("Best Nurse")
	noms.add(entity.Nomination{CategoryID: catID, NomineeName: "P", Status: entity.NominationPending})
	approved := noms.add(entity.Nomination{CategoryID: catID, NomineeName: "A", Status: entity.NominationApproved})

	public := &entity.User{ID: "user-1", Role: entity.RolePublic}
	got, err := svc.List(context.Background(), public, repo.NominationFilter{Status: entity.NominationPending})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != approved {
		t.Fatalf("public list = %+v, want only the approved nomination", got)
	}

	admin := &entity.User{ID: "admin-1", Role: entity.RoleAdmin}
	got, err = svc.List(context.Background(), admin, repo.NominationFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("admin list has %d rows, want 2", len(got))
	}
}

func TestReviewNomination(t *testing.T) {
	svc, noms, cats := newNominationService()
	catID := cats.add("Best Nurse")
	id := noms.add(entity.Nomination{CategoryID: catID, NomineeName: "Jane"})

	when := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return when }

	n, err := svc.Review(context.Background(), "admin-1", id, entity.NominationApproved, "")
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if n.Status != entity.NominationApproved {
		t.Errorf("status = %q, want APPROVED", n.Status)
	}
	if n.ReviewedByID != "admin-1" || n.ReviewedAt == nil || !n.ReviewedAt.Equal(when) {
		t.Errorf("reviewer stamp = %q/%v, want admin-1/%v", n.ReviewedByID, n.ReviewedAt, when)
	}
}

func TestReviewRejectsOtherStatuses(t *testing.T) {
	svc, noms, cats := newNominationService()
	id := noms.add(entity.Nomination{CategoryID: cats.add("C"), NomineeName: "Jane"})

	for _, status := range []string{"PENDING", "approved", "DELETED", ""} {
		if _, err := svc.Review(context.Background(), "admin-1", id, status, ""); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("Review(%q) error = %v, want ErrInvalidStatus", status, err)
		}
	}
}

func TestReviewUnknownNomination(t *testing.T) {
	svc, _, _ := newNominationService()
	if _, err := svc.Review(context.Background(), "admin-1", "nope", entity.NominationApproved, ""); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("Review error = %v, want ErrNotFound", err)
	}
}
