package answer

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/question"
	"github.com/saulo-duarte/question-bank/internal/user"
)

// UserAnswer is append-only; rows are removed only by a stats reset or
// together with their question.
type UserAnswer struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *user.User         `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	QuestionID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"question_id"`
	Question       *question.Question `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	SelectedAnswer string             `gorm:"type:varchar(1);not null" json:"selected_answer"`
	IsCorrect      bool               `gorm:"not null" json:"is_correct"`
	AnsweredAt     time.Time          `gorm:"autoCreateTime" json:"answered_at"`
}

func (a *UserAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
