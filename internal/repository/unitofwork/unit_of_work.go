package unitofwork

import (
	"context"

	"ogiri-game-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TopicRepository() contract.TopicRepository
	AnswerRepository() contract.AnswerRepository
}
