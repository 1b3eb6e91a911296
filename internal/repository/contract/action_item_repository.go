package contract

import (
	"context"

	"ai-lifecoach-be/internal/entity"
)

type ActionItemRepository interface {
	// Create stores a new action item and fills in its remote id.
	// Action items are never updated or deleted by this system.
	Create(ctx context.Context, item *entity.ActionItem) error
}
