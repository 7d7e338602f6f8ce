package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/internal/domain/voting"
)

// pgUniqueViolation is the Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

type VoteRepository struct {
	pool *pgxpool.Pool
}

func NewVoteRepository(pool *pgxpool.Pool) *VoteRepository {
	return &VoteRepository{pool: pool}
}

// Insert appends one vote. The pre-check inside the transaction is an
// optimization that catches most duplicates with a friendly path; the unique
// index on (user_id, category_id) is the source of truth, and a violation
// raised by concurrent casts maps to voting.ErrAlreadyVoted without retry.
func (r *VoteRepository) Insert(ctx context.Context, v *entity.Vote) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM votes WHERE user_id = $1 AND category_id = $2)
	`, v.UserID, v.CategoryID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return voting.ErrAlreadyVoted
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO votes (user_id, category_id, nomination_id, ip_address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, cast_at
	`, v.UserID, v.CategoryID, v.NominationID, v.IPAddress)
	if err := row.Scan(&v.ID, &v.CastAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return voting.ErrAlreadyVoted
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *VoteRepository) ListByUser(ctx context.Context, userID string) ([]entity.Vote, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.user_id, v.category_id, v.nomination_id, v.ip_address, v.cast_at,
		       c.name, n.nominee_name
		FROM votes v
		JOIN categories c ON c.id = v.category_id
		JOIN nominations n ON n.id = v.nomination_id
		WHERE v.user_id = $1
		ORDER BY v.cast_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Vote, 0)
	for rows.Next() {
		var v entity.Vote
		if err := rows.Scan(&v.ID, &v.UserID, &v.CategoryID, &v.NominationID, &v.IPAddress,
			&v.CastAt, &v.CategoryName, &v.NomineeName); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VoteRepository) CountTotal(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM votes`).Scan(&n)
	return n, err
}

func (r *VoteRepository) CountUniqueVoters(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT user_id) FROM votes`).Scan(&n)
	return n, err
}

func (r *VoteRepository) CountByCategory(ctx context.Context) ([]repository.CategoryVotes, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, COUNT(v.id)
		FROM votes v
		JOIN categories c ON c.id = v.category_id
		GROUP BY c.id, c.name
		ORDER BY COUNT(v.id) DESC, c.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]repository.CategoryVotes, 0)
	for rows.Next() {
		var cv repository.CategoryVotes
		if err := rows.Scan(&cv.CategoryID, &cv.CategoryName, &cv.VoteCount); err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, rows.Err()
}

// TopNominees ranks by vote count descending; ties are broken by the earliest
// cast vote among the tied nominees, which keeps the ordering deterministic.
func (r *VoteRepository) TopNominees(ctx context.Context, limit int) ([]repository.NomineeVotes, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT n.id, n.nominee_name, c.name, COUNT(v.id)
		FROM votes v
		JOIN nominations n ON n.id = v.nomination_id
		JOIN categories c ON c.id = n.category_id
		GROUP BY n.id, n.nominee_name, c.name
		ORDER BY COUNT(v.id) DESC, MIN(v.cast_at) ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]repository.NomineeVotes, 0)
	for rows.Next() {
		var nv repository.NomineeVotes
		if err := rows.Scan(&nv.NominationID, &nv.NomineeName, &nv.CategoryName, &nv.VoteCount); err != nil {
			return nil, err
		}
		out = append(out, nv)
	}
	return out, rows.Err()
}

var _ repository.VoteRepository = (*VoteRepository)(nil)
