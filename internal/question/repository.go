package question

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	List(ctx context.Context, f Filter) ([]*Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *questionRepository) List(ctx context.Context, f Filter) ([]*Question, error) {
	query := r.db.WithContext(ctx).Model(&Question{})
	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.Hardness != nil {
		query = query.Where("hardness = ?", string(*f.Hardness))
	}

	var questions []*Question
	if err := query.Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}
