package contract

import (
	"context"

	"ai-lifecoach-be/internal/entity"
)

type ReflectionRepository interface {
	// FindRecent returns up to limit reflections ordered by session date
	// descending. No pagination beyond the fixed limit.
	FindRecent(ctx context.Context, limit int) ([]*entity.Reflection, error)
	// Create stores a new reflection and fills in its remote id.
	Create(ctx context.Context, reflection *entity.Reflection) error
}
