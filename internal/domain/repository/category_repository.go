package repository

import (
	"context"

	"github.com/nhea/awards-api/internal/domain/entity"
)

// CategoryRepository defines category CRUD. Mutations are admin-only and
// enforced at the handler layer.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	ListActive(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Count(ctx context.Context) (int64, error)
}
