package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
)

type RSVPRepository struct {
	pool *pgxpool.Pool
}

func NewRSVPRepository(pool *pgxpool.Pool) *RSVPRepository {
	return &RSVPRepository{pool: pool}
}

func (r *RSVPRepository) Upsert(ctx context.Context, rv *entity.RSVP) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO rsvps (user_id, attending, number_of_guests)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET attending = EXCLUDED.attending,
		    number_of_guests = EXCLUDED.number_of_guests,
		    updated_at = now()
		RETURNING id, updated_at
	`, rv.UserID, rv.Attending, rv.NumberOfGuests)

	return row.Scan(&rv.ID, &rv.UpdatedAt)
}

func (r *RSVPRepository) GetByUser(ctx context.Context, userID string) (*entity.RSVP, error) {
	rv := &entity.RSVP{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, attending, number_of_guests, updated_at
		FROM rsvps
		WHERE user_id = $1
	`, userID)

	if err := row.Scan(&rv.ID, &rv.UserID, &rv.Attending, &rv.NumberOfGuests, &rv.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *RSVPRepository) Stats(ctx context.Context) (repository.RSVPStats, error) {
	var st repository.RSVPStats
	row := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE attending),
		       COUNT(*) FILTER (WHERE NOT attending),
		       COALESCE(SUM(number_of_guests) FILTER (WHERE attending), 0)
		FROM rsvps
	`)
	err := row.Scan(&st.Total, &st.Attending, &st.NotAttending, &st.TotalGuests)
	return st, err
}

var _ repository.RSVPRepository = (*RSVPRepository)(nil)
