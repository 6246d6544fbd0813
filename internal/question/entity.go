package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/category"
)

type Question struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionText  string             `gorm:"type:text;not null" json:"question_text"`
	OptionA       string             `gorm:"type:text;not null" json:"option_a"`
	OptionB       string             `gorm:"type:text;not null" json:"option_b"`
	OptionC       string             `gorm:"type:text;not null" json:"option_c"`
	OptionD       string             `gorm:"type:text;not null" json:"option_d"`
	CorrectAnswer Option             `gorm:"type:varchar(1);not null" json:"correct_answer"`
	Hardness      *Hardness          `gorm:"type:varchar(16);index" json:"hardness"`
	CategoryID    *uuid.UUID         `gorm:"type:uuid;index" json:"category_id"`
	Category      *category.Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
