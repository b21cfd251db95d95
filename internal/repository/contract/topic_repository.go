package contract

import (
	"context"

	"ogiri-game-be/internal/entity"
	"ogiri-game-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TopicRepository interface {
	Create(ctx context.Context, topic *entity.Topic) error
	Update(ctx context.Context, topic *entity.Topic) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// DeactivateAll closes every open topic in one statement. Used by the
	// auto-generation path so only the freshly generated topic stays active.
	DeactivateAll(ctx context.Context) error
}
