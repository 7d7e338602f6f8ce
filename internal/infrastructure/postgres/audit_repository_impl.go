package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
)

type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Insert(ctx context.Context, e *entity.AuditEntry) error {
	details, _ := json.Marshal(e.Details)

	var uid pgtype.Text
	if e.UserID != "" {
		uid.String = e.UserID
		uid.Valid = true
	}
	var ip pgtype.Text
	if e.IPAddress != "" {
		ip.String = e.IPAddress
		ip.Valid = true
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_logs (user_id, action, details, ip_address)
		VALUES ($1, $2, $3, $4)
	`, uid, e.Action, details, ip)
	return err
}

var _ repository.AuditRepository = (*AuditRepository)(nil)
