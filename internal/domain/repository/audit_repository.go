package repository

import (
	"context"

	"github.com/nhea/awards-api/internal/domain/entity"
)

// AuditRepository records best-effort audit entries. Callers ignore the
// returned error after logging it; audit failure never fails the operation.
type AuditRepository interface {
	Insert(ctx context.Context, e *entity.AuditEntry) error
}
