package service

import (
	"context"
	"encoding/json"
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
	gocache "github.com/patrickmn/go-cache"
)

const activeTopicsCacheKey = "topics:active"

type ITopicService interface {
	GetAll(ctx context.Context) ([]*dto.TopicResponse, error)
	GetActive(ctx context.Context) ([]*dto.TopicResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TopicDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	CreateAutoGenerated(ctx context.Context) (*dto.TopicResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*dto.TopicResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type topicService struct {
	uowFactory       unitofwork.RepositoryFactory
	judge            judge.Judge
	publisherService IPublisherService
	cache            *gocache.Cache
	logger           logger.ILogger
}

func NewTopicService(
	uowFactory unitofwork.RepositoryFactory,
	j judge.Judge,
	publisherService IPublisherService,
	cache *gocache.Cache,
	log logger.ILogger,
) ITopicService {
	return &topicService{
		uowFactory:       uowFactory,
		judge:            j,
		publisherService: publisherService,
		cache:            cache,
		logger:           log,
	}
}

func (s *topicService) GetAll(ctx context.Context) ([]*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topics, err := uow.TopicRepository().FindAll(ctx,
		specification.WithAnswers{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TopicResponse, len(topics))
	for i, topic := range topics {
		result[i] = toTopicResponse(topic)
	}
	return result, nil
}

func (s *topicService) GetActive(ctx context.Context) ([]*dto.TopicResponse, error) {
	if cached, found := s.cache.Get(activeTopicsCacheKey); found {
		return cached.([]*dto.TopicResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	topics, err := uow.TopicRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.WithAnswers{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TopicResponse, len(topics))
	for i, topic := range topics {
		result[i] = toTopicResponse(topic)
	}

	s.cache.Set(activeTopicsCacheKey, result, gocache.DefaultExpiration)
	return result, nil
}

func (s *topicService) Show(ctx context.Context, id uuid.UUID) (*dto.TopicDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.TopicRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.WithAnswers{OrderByScore: true},
	)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, serverutils.NewNotFoundError(constant.ErrMsgTopicNotFound)
	}

	return toTopicDetailResponse(topic), nil
}

func (s *topicService) Create(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic := entity.Topic{
		Id:        uuid.New(),
		Content:   req.Content,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := uow.TopicRepository().Create(ctx, &topic); err != nil {
		return nil, err
	}

	s.cache.Delete(activeTopicsCacheKey)
	s.publishChange(ctx, "topics", "created", topic.Id, topic.Id)

	return toTopicResponse(&topic), nil
}

func (s *topicService) CreateAutoGenerated(ctx context.Context) (*dto.TopicResponse, error) {
	// The judge call stays outside the transaction: it can take seconds and
	// must not hold row locks while it runs.
	content := s.judge.GenerateTopic(ctx)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Close every open round first, so the generated topic is the only
	// active one once the transaction commits.
	if err := uow.TopicRepository().DeactivateAll(ctx); err != nil {
		return nil, err
	}

	topic := entity.Topic{
		Id:              uuid.New(),
		Content:         content,
		IsActive:        true,
		IsAutoGenerated: true,
		CreatedAt:       time.Now(),
	}
	if err := uow.TopicRepository().Create(ctx, &topic); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.cache.Delete(activeTopicsCacheKey)
	s.publishChange(ctx, "topics", "created", topic.Id, topic.Id)

	return toTopicResponse(&topic), nil
}

func (s *topicService) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, serverutils.NewNotFoundError(constant.ErrMsgTopicNotFound)
	}

	now := time.Now()
	topic.IsActive = isActive
	topic.UpdatedAt = &now

	if err := uow.TopicRepository().Update(ctx, topic); err != nil {
		return nil, err
	}

	s.cache.Delete(activeTopicsCacheKey)
	s.publishChange(ctx, "topics", "updated", topic.Id, topic.Id)

	return toTopicResponse(topic), nil
}

func (s *topicService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if topic == nil {
		return serverutils.NewNotFoundError(constant.ErrMsgTopicNotFound)
	}

	// Answers go with the topic via the FK cascade.
	if err := uow.TopicRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(activeTopicsCacheKey)
	s.publishChange(ctx, "topics", "deleted", id, id)

	return nil
}

func (s *topicService) publishChange(ctx context.Context, table, action string, entityId, topicId uuid.UUID) {
	msg := dto.ChangeFeedMessage{
		Table:      table,
		Action:     action,
		EntityId:   entityId,
		TopicId:    topicId,
		OccurredAt: time.Now(),
	}
	payload, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("TopicService", "Failed to publish change event", map[string]interface{}{
			"table":  table,
			"action": action,
			"error":  err.Error(),
		})
	}
}

func toTopicResponse(t *entity.Topic) *dto.TopicResponse {
	res := &dto.TopicResponse{
		Id:              t.Id,
		Content:         t.Content,
		IsActive:        t.IsActive,
		IsAutoGenerated: t.IsAutoGenerated,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}

	if t.Answers != nil {
		res.Answers = make([]*dto.TopicAnswerSummary, len(t.Answers))
		for i, a := range t.Answers {
			res.Answers[i] = &dto.TopicAnswerSummary{
				Id:         a.Id,
				Content:    a.Content,
				Score:      a.Score,
				IsSelected: a.IsSelected,
			}
		}
	}

	return res
}

func toTopicDetailResponse(t *entity.Topic) *dto.TopicDetailResponse {
	res := &dto.TopicDetailResponse{
		Id:              t.Id,
		Content:         t.Content,
		IsActive:        t.IsActive,
		IsAutoGenerated: t.IsAutoGenerated,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		Answers:         make([]*dto.AnswerResponse, len(t.Answers)),
	}
	for i, a := range t.Answers {
		res.Answers[i] = toAnswerResponse(a)
	}
	return res
}
