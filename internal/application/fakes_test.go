package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nhea/awards-api/internal/domain/entity"
	repo "github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/internal/domain/voting"
)

// In-memory repositories for service tests. The vote fake reproduces the
// unique-index behavior of the votes table so concurrency tests exercise the
// same contract as Postgres.

type fakeVoteRepo struct {
	mu    sync.Mutex
	votes []*entity.Vote
	byKey map[string]bool
	next  int
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{byKey: map[string]bool{}}
}

func (r *fakeVoteRepo) Insert(_ context.Context, v *entity.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := v.UserID + "/" + v.CategoryID
	if r.byKey[key] {
		return voting.ErrAlreadyVoted
	}
	r.byKey[key] = true
	r.next++
	v.ID = fmt.Sprintf("vote-%d", r.next)
	if v.CastAt.IsZero() {
		v.CastAt = time.Now()
	}
	cp := *v
	r.votes = append(r.votes, &cp)
	return nil
}

func (r *fakeVoteRepo) ListByUser(_ context.Context, userID string) ([]entity.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Vote, 0)
	for _, v := range r.votes {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVoteRepo) CountTotal(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.votes)), nil
}

func (r *fakeVoteRepo) CountUniqueVoters(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	for _, v := range r.votes {
		seen[v.UserID] = true
	}
	return int64(len(seen)), nil
}

func (r *fakeVoteRepo) CountByCategory(context.Context) ([]repo.CategoryVotes, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tally := map[string]int64{}
	for _, v := range r.votes {
		tally[v.CategoryID]++
	}
	out := make([]repo.CategoryVotes, 0, len(tally))
	for id, n := range tally {
		out = append(out, repo.CategoryVotes{CategoryID: id, VoteCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}

func (r *fakeVoteRepo) TopNominees(_ context.Context, limit int) ([]repo.NomineeVotes, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tally := map[string]int64{}
	first := map[string]time.Time{}
	for _, v := range r.votes {
		tally[v.NominationID]++
		if t, ok := first[v.NominationID]; !ok || v.CastAt.Before(t) {
			first[v.NominationID] = v.CastAt
		}
	}
	out := make([]repo.NomineeVotes, 0, len(tally))
	for id, n := range tally {
		out = append(out, repo.NomineeVotes{NominationID: id, VoteCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VoteCount != out[j].VoteCount {
			return out[i].VoteCount > out[j].VoteCount
		}
		return first[out[i].NominationID].Before(first[out[j].NominationID])
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeNominationRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Nomination
	next int
}

func newFakeNominationRepo() *fakeNominationRepo {
	return &fakeNominationRepo{rows: map[string]*entity.Nomination{}}
}

func (r *fakeNominationRepo) add(n entity.Nomination) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	n.ID = fmt.Sprintf("nom-%d", r.next)
	if n.Status == "" {
		n.Status = entity.NominationPending
	}
	r.rows[n.ID] = &n
	return n.ID
}

func (r *fakeNominationRepo) Create(_ context.Context, n *entity.Nomination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	n.ID = fmt.Sprintf("nom-%d", r.next)
	n.Status = entity.NominationPending
	n.CreatedAt = time.Now()
	cp := *n
	r.rows[n.ID] = &cp
	return nil
}

func (r *fakeNominationRepo) GetByID(_ context.Context, id string) (*entity.Nomination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNominationRepo) GetApproved(_ context.Context, id, categoryID string) (*entity.Nomination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.rows[id]
	if !ok || n.CategoryID != categoryID || n.Status != entity.NominationApproved {
		return nil, repo.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNominationRepo) List(_ context.Context, f repo.NominationFilter) ([]entity.Nomination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Nomination, 0)
	for _, n := range r.rows {
		if f.Status != "" && n.Status != f.Status {
			continue
		}
		if f.CategoryID != "" && n.CategoryID != f.CategoryID {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeNominationRepo) Review(_ context.Context, id, status, reviewerID string, reviewedAt time.Time) (*entity.Nomination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	n.Status = status
	n.ReviewedByID = reviewerID
	t := reviewedAt
	n.ReviewedAt = &t
	cp := *n
	return &cp, nil
}

func (r *fakeNominationRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeNominationRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

type fakeCategoryRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Category
	next int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) add(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	id := fmt.Sprintf("cat-%d", r.next)
	r.rows[id] = &entity.Category{ID: id, Name: name, IsActive: true}
	return id
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	c.ID = fmt.Sprintf("cat-%d", r.next)
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) ListActive(context.Context) ([]entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Category, 0)
	for _, c := range r.rows {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[c.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

type fakeSettingsRepo struct {
	mu      sync.Mutex
	created bool
	s       entity.EventSettings
}

// GetOrCreate mirrors the storage layer: the first read materializes an
// enabled policy, later mutations stick.
func (r *fakeSettingsRepo) GetOrCreate(context.Context) (*entity.EventSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.created {
		r.created = true
		r.s.VotingEnabled = true
	}
	cp := r.s
	return &cp, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, upd repo.SettingsUpdate) (*entity.EventSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if upd.VotingEnabled != nil {
		r.s.VotingEnabled = *upd.VotingEnabled
	}
	if upd.VotingStartDate != nil {
		t := *upd.VotingStartDate
		r.s.VotingStartDate = &t
	}
	if upd.VotingEndDate != nil {
		t := *upd.VotingEndDate
		r.s.VotingEndDate = &t
	}
	if upd.ResultsAnnounced != nil {
		r.s.ResultsAnnounced = *upd.ResultsAnnounced
	}
	cp := r.s
	return &cp, nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []entity.AuditEntry
	err     error
}

func (r *fakeAuditRepo) Insert(_ context.Context, e *entity.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeAuditRepo) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

var errBoom = errors.New("boom")

var (
	_ repo.VoteRepository       = (*fakeVoteRepo)(nil)
	_ repo.NominationRepository = (*fakeNominationRepo)(nil)
	_ repo.CategoryRepository   = (*fakeCategoryRepo)(nil)
	_ repo.SettingsRepository   = (*fakeSettingsRepo)(nil)
	_ repo.AuditRepository      = (*fakeAuditRepo)(nil)
)
