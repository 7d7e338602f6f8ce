package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// GetOrCreate reads the singleton row, inserting the default enabled row on
// first use. Every vote attempt goes through here so an admin toggle is never
// served stale.
func (r *SettingsRepository) GetOrCreate(ctx context.Context) (*entity.EventSettings, error) {
	s, err := r.get(ctx)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, errNotFound) {
		return nil, err
	}
	// Concurrent first calls may race here; ON CONFLICT keeps it a singleton.
	// The lazily created policy permits voting until an admin says otherwise.
	_, err = r.pool.Exec(ctx, `
		INSERT INTO event_settings (singleton, voting_enabled) VALUES (TRUE, TRUE)
		ON CONFLICT (singleton) DO NOTHING
	`)
	if err != nil {
		return nil, err
	}
	return r.get(ctx)
}

func (r *SettingsRepository) get(ctx context.Context) (*entity.EventSettings, error) {
	s := &entity.EventSettings{}
	var start, end pgtype.Timestamptz
	row := r.pool.QueryRow(ctx, `
		SELECT id, voting_enabled, voting_start_date, voting_end_date, results_announced, updated_at
		FROM event_settings
		LIMIT 1
	`)
	if err := row.Scan(&s.ID, &s.VotingEnabled, &start, &end, &s.ResultsAnnounced, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	if start.Valid {
		t := start.Time
		s.VotingStartDate = &t
	}
	if end.Valid {
		t := end.Time
		s.VotingEndDate = &t
	}
	return s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, upd repository.SettingsUpdate) (*entity.EventSettings, error) {
	if _, err := r.GetOrCreate(ctx); err != nil {
		return nil, err
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE event_settings
		SET voting_enabled    = COALESCE($1, voting_enabled),
		    voting_start_date = COALESCE($2, voting_start_date),
		    voting_end_date   = COALESCE($3, voting_end_date),
		    results_announced = COALESCE($4, results_announced),
		    updated_at        = now()
	`, upd.VotingEnabled, upd.VotingStartDate, upd.VotingEndDate, upd.ResultsAnnounced)
	if err != nil {
		return nil, err
	}
	return r.get(ctx)
}

var _ repository.SettingsRepository = (*SettingsRepository)(nil)
