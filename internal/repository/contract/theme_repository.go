package contract

import (
	"context"

	"ai-lifecoach-be/internal/entity"
)

type ThemeRepository interface {
	FindAll(ctx context.Context) ([]*entity.Theme, error)
	// FindByName does a remote exact-match lookup. A miss returns (nil, nil).
	FindByName(ctx context.Context, name string) (*entity.Theme, error)
	FindById(ctx context.Context, id string) (*entity.Theme, error)
	// Create stores a new theme and fills in its remote id. Name uniqueness
	// is not enforced here; callers search before creating.
	Create(ctx context.Context, theme *entity.Theme) error
}
