package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/voting"
)

type votingFixture struct {
	svc      *VoteService
	votes    *fakeVoteRepo
	noms     *fakeNominationRepo
	cats     *fakeCategoryRepo
	settings *fakeSettingsRepo
	audit    *fakeAuditRepo

	categoryID   string
	nominationID string
}

// newVotingFixture returns a service with voting open, one category and one
// approved nomination in it.
func newVotingFixture(t *testing.T) *votingFixture {
	t.Helper()
	f := &votingFixture{
		votes:    newFakeVoteRepo(),
		noms:     newFakeNominationRepo(),
		cats:     newFakeCategoryRepo(),
		settings: &fakeSettingsRepo{},
		audit:    &fakeAuditRepo{},
	}
	// Materialize the default policy so tests can mutate it afterwards.
	if _, err := f.settings.GetOrCreate(context.Background()); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	f.categoryID = f.cats.add("Best Nurse")
	f.nominationID = f.noms.add(entity.Nomination{
		CategoryID:  f.categoryID,
		NomineeName: "Jane Doe",
		Status:      entity.NominationApproved,
	})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	f.svc = NewVoteService(f.votes, f.noms, f.cats, f.settings, f.audit, logger)
	return f
}

func TestCastSuccess(t *testing.T) {
	f := newVotingFixture(t)

	v, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, f.nominationID, "10.0.0.1")
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if v.ID == "" {
		t.Error("expected vote ID to be assigned")
	}
	if v.CastAt.IsZero() {
		t.Error("expected CastAt to be stamped")
	}

	n, _ := f.votes.CountTotal(context.Background())
	if n != 1 {
		t.Fatalf("vote count = %d, want 1", n)
	}
	if got := f.audit.actions(); len(got) != 1 || got[0] != "VOTE_CAST" {
		t.Errorf("audit actions = %v, want [VOTE_CAST]", got)
	}
}

func TestCastFirstRunCreatesEnabledPolicy(t *testing.T) {
	f := newVotingFixture(t)
	// Fresh deployment: no settings row exists yet. The lazily created
	// policy must permit the very first cast.
	fresh := &fakeSettingsRepo{}
	f.svc.Settings = fresh

	v, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, f.nominationID, "")
	if err != nil {
		t.Fatalf("first-run Cast: %v", err)
	}
	if v.ID == "" {
		t.Error("expected vote ID to be assigned")
	}

	s, err := fresh.GetOrCreate(context.Background())
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !s.VotingEnabled {
		t.Error("lazily created policy must have voting enabled")
	}
}

func TestCastSecondVoteSameCategory(t *testing.T) {
	f := newVotingFixture(t)
	other := f.noms.add(entity.Nomination{
		CategoryID:  f.categoryID,
		NomineeName: "John Roe",
		Status:      entity.NominationApproved,
	})

	if _, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, f.nominationID, ""); err != nil {
		t.Fatalf("first Cast: %v", err)
	}
	_, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, other, "")
	if !errors.Is(err, voting.ErrAlreadyVoted) {
		t.Fatalf("second Cast error = %v, want ErrAlreadyVoted", err)
	}
	if voting.CodeOf(err) != voting.CodeAlreadyVoted {
		t.Errorf("CodeOf = %q, want %q", voting.CodeOf(err), voting.CodeAlreadyVoted)
	}

	// Denied attempt must not change the ledger.
	n, _ := f.votes.CountTotal(context.Background())
	if n != 1 {
		t.Errorf("vote count = %d, want 1", n)
	}
}

func TestCastDifferentCategoriesAllowed(t *testing.T) {
	f := newVotingFixture(t)
	cat2 := f.cats.add("Best Doctor")
	nom2 := f.noms.add(entity.Nomination{
		CategoryID:  cat2,
		NomineeName: "Ann Lee",
		Status:      entity.NominationApproved,
	})

	if _, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, f.nominationID, ""); err != nil {
		t.Fatalf("Cast in first category: %v", err)
	}
	if _, err := f.svc.Cast(context.Background(), "user-1", cat2, nom2, ""); err != nil {
		t.Fatalf("Cast in second category: %v", err)
	}
}

func TestCastWindowGating(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name     string
		mutate   func(s *entity.EventSettings)
		wantCode voting.Code
	}{
		{
			name:     "disabled",
			mutate:   func(s *entity.EventSettings) { s.VotingEnabled = false },
			wantCode: voting.CodeVotingDisabled,
		},
		{
			name: "disabled wins over not started",
			mutate: func(s *entity.EventSettings) {
				s.VotingEnabled = false
				s.VotingStartDate = &after
			},
			wantCode: voting.CodeVotingDisabled,
		},
		{
			name:     "not started",
			mutate:   func(s *entity.EventSettings) { s.VotingStartDate = &after },
			wantCode: voting.CodeVotingNotStarted,
		},
		{
			name:     "ended",
			mutate:   func(s *entity.EventSettings) { s.VotingEndDate = &before },
			wantCode: voting.CodeVotingEnded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVotingFixture(t)
			f.svc.Now = func() time.Time { return now }
			tt.mutate(&f.settings.s)

			_, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, f.nominationID, "")
			if voting.CodeOf(err) != tt.wantCode {
				t.Fatalf("Cast error = %v, want code %q", err, tt.wantCode)
			}
			n, _ := f.votes.CountTotal(context.Background())
			if n != 0 {
				t.Errorf("vote count = %d, want 0", n)
			}
		})
	}
}

func TestCastEligibility(t *testing.T) {
	f := newVotingFixture(t)
	pending := f.noms.add(entity.Nomination{CategoryID: f.categoryID, NomineeName: "P", Status: entity.NominationPending})
	rejected := f.noms.add(entity.Nomination{CategoryID: f.categoryID, NomineeName: "R", Status: entity.NominationRejected})
	otherCat := f.cats.add("Other")
	elsewhere := f.noms.add(entity.Nomination{CategoryID: otherCat, NomineeName: "E", Status: entity.NominationApproved})

	// Pending, rejected, wrong-category and unknown nominations all come
	// back as the same code.
	for _, id := range []string{pending, rejected, elsewhere, "nope"} {
		_, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, id, "")
		if voting.CodeOf(err) != voting.CodeNominationNotEligible {
			t.Errorf("Cast(%s) error = %v, want NOMINATION_NOT_ELIGIBLE", id, err)
		}
	}

	_, err := f.svc.Cast(context.Background(), "user-1", "no-such-category", f.nominationID, "")
	if voting.CodeOf(err) != voting.CodeCategoryNotFound {
		t.Errorf("Cast with unknown category error = %v, want CATEGORY_NOT_FOUND", err)
	}
}

func TestCastConcurrentSameUserCategory(t *testing.T) {
	f := newVotingFixture(t)
	const n = 32

	var wg sync.WaitGroup
	var ok, denied atomic.Int64
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, f.nominationID, "")
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, voting.ErrAlreadyVoted):
				denied.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok.Load() != 1 {
		t.Errorf("successful casts = %d, want exactly 1", ok.Load())
	}
	if denied.Load() != n-1 {
		t.Errorf("denied casts = %d, want %d", denied.Load(), n-1)
	}
	total, _ := f.votes.CountTotal(context.Background())
	if total != 1 {
		t.Errorf("ledger rows = %d, want 1", total)
	}
}

func TestCastAuditFailureDoesNotFailCast(t *testing.T) {
	f := newVotingFixture(t)
	f.audit.err = errBoom

	if _, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, f.nominationID, ""); err != nil {
		t.Fatalf("Cast: %v", err)
	}
}

func TestMyVotes(t *testing.T) {
	f := newVotingFixture(t)
	if _, err := f.svc.Cast(context.Background(), "user-1", f.categoryID, f.nominationID, ""); err != nil {
		t.Fatalf("Cast: %v", err)
	}

	mine, err := f.svc.MyVotes(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("MyVotes: %v", err)
	}
	if len(mine) != 1 || mine[0].CategoryID != f.categoryID {
		t.Fatalf("MyVotes = %+v, want one vote in %s", mine, f.categoryID)
	}

	theirs, err := f.svc.MyVotes(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("MyVotes: %v", err)
	}
	if len(theirs) != 0 {
		t.Errorf("MyVotes for non-voter = %+v, want empty", theirs)
	}
}

func TestAnalytics(t *testing.T) {
	f := newVotingFixture(t)
	second := f.noms.add(entity.Nomination{
		CategoryID:  f.categoryID,
		NomineeName: "John Roe",
		Status:      entity.NominationApproved,
	})

	// Two votes for the fixture nominee, one for the second. The second
	// nominee's vote lands first so a tie would favour it; here counts
	// differ so the fixture nominee must lead.
	for _, c := range []struct{ user, nom string }{
		{"user-1", second},
		{"user-2", f.nominationID},
		{"user-3", f.nominationID},
	} {
		if _, err := f.svc.Cast(context.Background(), c.user, f.categoryID, c.nom, ""); err != nil {
			t.Fatalf("Cast(%s): %v", c.user, err)
		}
	}

	a, err := f.svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if a.TotalVotes != 3 || a.UniqueVoters != 3 {
		t.Errorf("totals = %d/%d, want 3/3", a.TotalVotes, a.UniqueVoters)
	}
	if len(a.VotesByCategory) != 1 || a.VotesByCategory[0].VoteCount != 3 {
		t.Errorf("votes by category = %+v", a.VotesByCategory)
	}
	if len(a.TopNominees) != 2 {
		t.Fatalf("top nominees = %+v, want 2 rows", a.TopNominees)
	}
	if a.TopNominees[0].NominationID != f.nominationID || a.TopNominees[0].VoteCount != 2 {
		t.Errorf("leader = %+v, want %s with 2 votes", a.TopNominees[0], f.nominationID)
	}
}

func TestTopNomineesTieBreakEarliestVote(t *testing.T) {
	f := newVotingFixture(t)
	late := f.noms.add(entity.Nomination{
		CategoryID:  f.categoryID,
		NomineeName: "Late",
		Status:      entity.NominationApproved,
	})

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// One vote each; the fixture nominee's vote is earlier.
	_ = f.votes.Insert(context.Background(), &entity.Vote{
		UserID: "u1", CategoryID: f.categoryID, NominationID: f.nominationID, CastAt: base,
	})
	_ = f.votes.Insert(context.Background(), &entity.Vote{
		UserID: "u2", CategoryID: f.categoryID, NominationID: late, CastAt: base.Add(time.Minute),
	})

	top, err := f.votes.TopNominees(context.Background(), 10)
	if err != nil {
		t.Fatalf("TopNominees: %v", err)
	}
	if len(top) != 2 || top[0].NominationID != f.nominationID {
		t.Fatalf("top = %+v, want earliest-voted nominee first", top)
	}
}
