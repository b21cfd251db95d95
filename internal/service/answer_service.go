package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ogiri-game-be/internal/constant"
	"ogiri-game-be/internal/dto"
	"ogiri-game-be/internal/entity"
	"ogiri-game-be/internal/pkg/logger"
	"ogiri-game-be/internal/pkg/serverutils"
	"ogiri-game-be/internal/repository/specification"
	"ogiri-game-be/internal/repository/unitofwork"
	"ogiri-game-be/pkg/judge"

	"github.com/google/uuid"
)

type IAnswerService interface {
	GetByTopicId(ctx context.Context, topicId uuid.UUID) ([]*dto.AnswerResponse, error)
	Create(ctx context.Context, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, error)
	SelectBest(ctx context.Context, answerId uuid.UUID) (*dto.AnswerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type answerService struct {
	uowFactory       unitofwork.RepositoryFactory
	judge            judge.Judge
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewAnswerService(
	uowFactory unitofwork.RepositoryFactory,
	j judge.Judge,
	publisherService IPublisherService,
	log logger.ILogger,
) IAnswerService {
	return &answerService{
		uowFactory:       uowFactory,
		judge:            j,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *answerService) GetByTopicId(ctx context.Context, topicId uuid.UUID) ([]*dto.AnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answers, err := uow.AnswerRepository().FindAll(ctx,
		specification.ByTopicID{TopicID: topicId},
		specification.WithTopic{},
		specification.OrderByRank{},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AnswerResponse, len(answers))
	for i, answer := range answers {
		result[i] = toAnswerResponse(answer)
	}
	return result, nil
}

func (s *answerService) Create(ctx context.Context, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, error) {
	topicId, err := uuid.Parse(req.TopicId)
	if err != nil {
		return nil, serverutils.NewNotFoundError(constant.ErrMsgTopicNotFound)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: topicId})
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, serverutils.NewNotFoundError(constant.ErrMsgTopicNotFound)
	}
	if !topic.IsActive {
		return nil, errors.New(constant.ErrMsgTopicInactive)
	}

	// Two judge calls, both with built-in fallbacks. A dead judge means a
	// zero score and the stock comment, never a failed submission.
	score := s.judge.EvaluateAnswer(ctx, topic.Content, req.Content)
	reviewComment := s.judge.GenerateReviewComment(ctx, topic.Content, req.Content, score)

	answer := entity.Answer{
		Id:            uuid.New(),
		Content:       req.Content,
		TopicId:       topicId,
		Score:         score,
		ReviewComment: reviewComment,
		CreatedAt:     time.Now(),
	}

	if err := uow.AnswerRepository().Create(ctx, &answer); err != nil {
		return nil, err
	}

	s.publishChange(ctx, "answers", "created", answer.Id, topicId)

	return toAnswerResponse(&answer), nil
}

func (s *answerService) SelectBest(ctx context.Context, answerId uuid.UUID) (*dto.AnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answer, err := uow.AnswerRepository().FindOne(ctx,
		specification.ByID{ID: answerId},
		specification.WithTopic{},
	)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, serverutils.NewNotFoundError(constant.ErrMsgAnswerNotFound)
	}

	// Reset-then-set must commit as one transaction so the topic never ends
	// up with zero or two selected answers, however selections interleave.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AnswerRepository().UnselectSiblings(ctx, answer.TopicId, answerId); err != nil {
		return nil, err
	}
	if err := uow.AnswerRepository().MarkSelected(ctx, answerId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	updated, err := uow.AnswerRepository().FindOne(ctx,
		specification.ByID{ID: answerId},
		specification.WithTopic{},
	)
	if err != nil {
		return nil, err
	}

	s.publishChange(ctx, "answers", "selected", answerId, answer.TopicId)

	return toAnswerResponse(updated), nil
}

func (s *answerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answer, err := uow.AnswerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if answer == nil {
		return serverutils.NewNotFoundError(constant.ErrMsgAnswerNotFound)
	}

	if err := uow.AnswerRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publishChange(ctx, "answers", "deleted", id, answer.TopicId)

	return nil
}

func (s *answerService) publishChange(ctx context.Context, table, action string, entityId, topicId uuid.UUID) {
	msg := dto.ChangeFeedMessage{
		Table:      table,
		Action:     action,
		EntityId:   entityId,
		TopicId:    topicId,
		OccurredAt: time.Now(),
	}
	payload, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("AnswerService", "Failed to publish change event", map[string]interface{}{
			"table":  table,
			"action": action,
			"error":  err.Error(),
		})
	}
}

func toAnswerResponse(a *entity.Answer) *dto.AnswerResponse {
	if a == nil {
		return nil
	}

	res := &dto.AnswerResponse{
		Id:            a.Id,
		Content:       a.Content,
		TopicId:       a.TopicId,
		Score:         a.Score,
		IsSelected:    a.IsSelected,
		ReviewComment: a.ReviewComment,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	if a.Topic != nil {
		res.Topic = toTopicResponse(a.Topic)
	}

	return res
}
