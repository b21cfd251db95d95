package service

import (
	"context"
	"sort"

	"ogiri-game-be/internal/entity"
	"ogiri-game-be/internal/repository/contract"
	"ogiri-game-be/internal/repository/specification"
	"ogiri-game-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// memStore backs the fake repositories used by the service tests. It records
// every mutating call in ops so tests can assert transactional ordering.
type memStore struct {
	topics  map[uuid.UUID]*entity.Topic
	answers map[uuid.UUID]*entity.Answer
	ops     []string

	createTopicErr  error
	createAnswerErr error
}

func newMemStore() *memStore {
	return &memStore{
		topics:  make(map[uuid.UUID]*entity.Topic),
		answers: make(map[uuid.UUID]*entity.Answer),
	}
}

type fakeFactory struct {
	store *memStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *memStore
	inTx  bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.inTx = true
	u.store.ops = append(u.store.ops, "begin")
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.inTx = false
	u.store.ops = append(u.store.ops, "commit")
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.inTx {
		return nil
	}
	u.inTx = false
	u.store.ops = append(u.store.ops, "rollback")
	return nil
}

func (u *fakeUnitOfWork) TopicRepository() contract.TopicRepository {
	return &fakeTopicRepo{store: u.store}
}

func (u *fakeUnitOfWork) AnswerRepository() contract.AnswerRepository {
	return &fakeAnswerRepo{store: u.store}
}

type fakeTopicRepo struct {
	store *memStore
}

func (r *fakeTopicRepo) Create(ctx context.Context, topic *entity.Topic) error {
	if r.store.createTopicErr != nil {
		return r.store.createTopicErr
	}
	r.store.topics[topic.Id] = topic
	r.store.ops = append(r.store.ops, "topic.create")
	return nil
}

func (r *fakeTopicRepo) Update(ctx context.Context, topic *entity.Topic) error {
	r.store.topics[topic.Id] = topic
	r.store.ops = append(r.store.ops, "topic.update")
	return nil
}

func (r *fakeTopicRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.topics, id)
	for answerId, answer := range r.store.answers {
		if answer.TopicId == id {
			delete(r.store.answers, answerId)
		}
	}
	r.store.ops = append(r.store.ops, "topic.delete")
	return nil
}

func (r *fakeTopicRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			topic, found := r.store.topics[byID.ID]
			if !found {
				return nil, nil
			}
			return topic, nil
		}
	}
	return nil, nil
}

func (r *fakeTopicRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error) {
	activeOnly := false
	for _, spec := range specs {
		if _, ok := spec.(specification.ActiveOnly); ok {
			activeOnly = true
		}
	}

	var result []*entity.Topic
	for _, topic := range r.store.topics {
		if activeOnly && !topic.IsActive {
			continue
		}
		result = append(result, topic)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeTopicRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	topics, _ := r.FindAll(ctx, specs...)
	return int64(len(topics)), nil
}

func (r *fakeTopicRepo) DeactivateAll(ctx context.Context) error {
	for _, topic := range r.store.topics {
		topic.IsActive = false
	}
	r.store.ops = append(r.store.ops, "topic.deactivateAll")
	return nil
}

type fakeAnswerRepo struct {
	store *memStore
}

func (r *fakeAnswerRepo) Create(ctx context.Context, answer *entity.Answer) error {
	if r.store.createAnswerErr != nil {
		return r.store.createAnswerErr
	}
	r.store.answers[answer.Id] = answer
	r.store.ops = append(r.store.ops, "answer.create")
	return nil
}

func (r *fakeAnswerRepo) Update(ctx context.Context, answer *entity.Answer) error {
	r.store.answers[answer.Id] = answer
	r.store.ops = append(r.store.ops, "answer.update")
	return nil
}

func (r *fakeAnswerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.answers, id)
	r.store.ops = append(r.store.ops, "answer.delete")
	return nil
}

func (r *fakeAnswerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Answer, error) {
	var (
		target    *entity.Answer
		withTopic bool
	)
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			target = r.store.answers[s.ID]
		case specification.WithTopic:
			withTopic = true
		}
	}
	if target == nil {
		return nil, nil
	}
	if withTopic {
		target.Topic = r.store.topics[target.TopicId]
	}
	return target, nil
}

func (r *fakeAnswerRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error) {
	var topicId *uuid.UUID
	for _, spec := range specs {
		if byTopic, ok := spec.(specification.ByTopicID); ok {
			id := byTopic.TopicID
			topicId = &id
		}
	}

	var result []*entity.Answer
	for _, answer := range r.store.answers {
		if topicId != nil && answer.TopicId != *topicId {
			continue
		}
		result = append(result, answer)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeAnswerRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	answers, _ := r.FindAll(ctx, specs...)
	return int64(len(answers)), nil
}

func (r *fakeAnswerRepo) UnselectSiblings(ctx context.Context, topicId uuid.UUID, exceptId uuid.UUID) error {
	for _, answer := range r.store.answers {
		if answer.TopicId == topicId && answer.Id != exceptId {
			answer.IsSelected = false
		}
	}
	r.store.ops = append(r.store.ops, "answer.unselectSiblings")
	return nil
}

func (r *fakeAnswerRepo) MarkSelected(ctx context.Context, id uuid.UUID) error {
	if answer, found := r.store.answers[id]; found {
		answer.IsSelected = true
	}
	r.store.ops = append(r.store.ops, "answer.markSelected")
	return nil
}

type stubJudge struct {
	score   int
	comment string
	topic   string

	evalCalls    int
	commentCalls int
	topicCalls   int
}

func (j *stubJudge) EvaluateAnswer(ctx context.Context, topicContent, answerContent string) int {
	j.evalCalls++
	return j.score
}

func (j *stubJudge) GenerateReviewComment(ctx context.Context, topicContent, answerContent string, score int) string {
	j.commentCalls++
	return j.comment
}

func (j *stubJudge) GenerateTopic(ctx context.Context) string {
	j.topicCalls++
	return j.topic
}

type memPublisher struct {
	payloads [][]byte
	err      error
}

func (p *memPublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
