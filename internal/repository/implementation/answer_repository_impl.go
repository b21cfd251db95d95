package implementation

import (
	"context"
	"errors"

	"ogiri-game-be/internal/entity"
	"ogiri-game-be/internal/mapper"
	"ogiri-game-be/internal/model"
	"ogiri-game-be/internal/repository/contract"
	"ogiri-game-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnswerMapper
}

func NewAnswerRepository(db *gorm.DB) contract.AnswerRepository {
	return &AnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnswerMapper(),
	}
}

func (r *AnswerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnswerRepositoryImpl) Create(ctx context.Context, answer *entity.Answer) error {
	m := r.mapper.ToModel(answer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*answer = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnswerRepositoryImpl) Update(ctx context.Context, answer *entity.Answer) error {
	m := r.mapper.ToModel(answer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*answer = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnswerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Answer{}, id).Error
}

func (r *AnswerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Answer, error) {
	var m model.Answer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AnswerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error) {
	var models []*model.Answer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnswerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Answer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AnswerRepositoryImpl) UnselectSiblings(ctx context.Context, topicId uuid.UUID, exceptId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Answer{}).
		Where("topic_id = ? AND id <> ?", topicId, exceptId).
		Update("is_selected", false).Error
}

func (r *AnswerRepositoryImpl) MarkSelected(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Answer{}).
		Where("id = ?", id).
		Update("is_selected", true).Error
}
