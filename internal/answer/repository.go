package answer

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Record(ctx context.Context, userID, questionID uuid.UUID, selected string, isCorrect bool) error
	CountByUser(ctx context.Context, userID uuid.UUID) (total int64, correct int64, err error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Record(ctx context.Context, userID, questionID uuid.UUID, selected string, isCorrect bool) error {
	return r.db.WithContext(ctx).Create(&UserAnswer{
		UserID:         userID,
		QuestionID:     questionID,
		SelectedAnswer: selected,
		IsCorrect:      isCorrect,
	}).Error
}

func (r *answerRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, int64, error) {
	var total, correct int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&UserAnswer{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Model(&UserAnswer{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&correct).Error; err != nil {
		return 0, 0, err
	}
	return total, correct, nil
}

func (r *answerRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&UserAnswer{})
	return result.RowsAffected, result.Error
}

// DeleteByQuestion runs on the caller's transaction.
func DeleteByQuestion(tx *gorm.DB, questionID uuid.UUID) (int64, error) {
	result := tx.Where("question_id = ?", questionID).Delete(&UserAnswer{})
	return result.RowsAffected, result.Error
}
