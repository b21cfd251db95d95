package contract

import (
	"context"

	"ogiri-game-be/internal/entity"
	"ogiri-game-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) error
	Update(ctx context.Context, answer *entity.Answer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Answer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UnselectSiblings clears is_selected on every other answer of the topic.
	// MarkSelected flags the target. Both must run inside the same unit of
	// work so the one-selected-answer-per-topic invariant holds on commit.
	UnselectSiblings(ctx context.Context, topicId uuid.UUID, exceptId uuid.UUID) error
	MarkSelected(ctx context.Context, id uuid.UUID) error
}
