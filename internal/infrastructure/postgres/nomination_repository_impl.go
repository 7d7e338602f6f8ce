package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
)

type NominationRepository struct {
	pool *pgxpool.Pool
}

func NewNominationRepository(pool *pgxpool.Pool) *NominationRepository {
	return &NominationRepository{pool: pool}
}

func (r *NominationRepository) Create(ctx context.Context, n *entity.Nomination) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO nominations (category_id, nominee_name, nominee_email, organization, reason, submitted_by_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at
	`, n.CategoryID, n.NomineeName, n.NomineeEmail, n.Organization, n.Reason, n.SubmittedByID)

	return row.Scan(&n.ID, &n.Status, &n.CreatedAt)
}

func (r *NominationRepository) GetByID(ctx context.Context, id string) (*entity.Nomination, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, category_id, nominee_name, nominee_email, organization, reason,
		       status, submitted_by_id, reviewed_by_id, reviewed_at, created_at
		FROM nominations
		WHERE id = $1
	`, id)
	return scanNomination(row)
}

func (r *NominationRepository) GetApproved(ctx context.Context, id, categoryID string) (*entity.Nomination, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, category_id, nominee_name, nominee_email, organization, reason,
		       status, submitted_by_id, reviewed_by_id, reviewed_at, created_at
		FROM nominations
		WHERE id = $1 AND category_id = $2 AND status = $3
	`, id, categoryID, entity.NominationApproved)
	return scanNomination(row)
}

func (r *NominationRepository) List(ctx context.Context, f repository.NominationFilter) ([]entity.Nomination, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT n.id, n.category_id, n.nominee_name, n.nominee_email, n.organization, n.reason,
		       n.status, n.submitted_by_id, n.reviewed_by_id, n.reviewed_at, n.created_at,
		       c.name, u.name
		FROM nominations n
		JOIN categories c ON c.id = n.category_id
		JOIN users u ON u.id = n.submitted_by_id
		WHERE ($1 = '' OR n.status = $1)
		  AND ($2 = '' OR n.category_id::text = $2)
		ORDER BY n.created_at DESC
	`, f.Status, f.CategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Nomination, 0)
	for rows.Next() {
		var n entity.Nomination
		var reviewedBy pgtype.Text
		var reviewedAt pgtype.Timestamptz
		if err := rows.Scan(&n.ID, &n.CategoryID, &n.NomineeName, &n.NomineeEmail, &n.Organization,
			&n.Reason, &n.Status, &n.SubmittedByID, &reviewedBy, &reviewedAt, &n.CreatedAt,
			&n.CategoryName, &n.SubmittedByName); err != nil {
			return nil, err
		}
		n.ReviewedByID = reviewedBy.String
		if reviewedAt.Valid {
			t := reviewedAt.Time
			n.ReviewedAt = &t
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NominationRepository) Review(ctx context.Context, id, status, reviewerID string, reviewedAt time.Time) (*entity.Nomination, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE nominations
		SET status = $1, reviewed_by_id = $2, reviewed_at = $3
		WHERE id = $4
		RETURNING id, category_id, nominee_name, nominee_email, organization, reason,
		          status, submitted_by_id, reviewed_by_id, reviewed_at, created_at
	`, status, reviewerID, reviewedAt, id)
	return scanNomination(row)
}

func (r *NominationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM nominations WHERE status = $1`, status).Scan(&n)
	return n, err
}

func (r *NominationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM nominations`).Scan(&n)
	return n, err
}

func scanNomination(row pgx.Row) (*entity.Nomination, error) {
	n := &entity.Nomination{}
	var reviewedBy pgtype.Text
	var reviewedAt pgtype.Timestamptz
	if err := row.Scan(&n.ID, &n.CategoryID, &n.NomineeName, &n.NomineeEmail, &n.Organization,
		&n.Reason, &n.Status, &n.SubmittedByID, &reviewedBy, &reviewedAt, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	n.ReviewedByID = reviewedBy.String
	if reviewedAt.Valid {
		t := reviewedAt.Time
		n.ReviewedAt = &t
	}
	return n, nil
}

var _ repository.NominationRepository = (*NominationRepository)(nil)
