package contract

import (
	"context"

	"ai-lifecoach-be/internal/entity"
)

type ReadingRepository interface {
	// Create stores a new reading and fills in its remote id.
	Create(ctx context.Context, reading *entity.Reading) error
}
