package question

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/category"
)

type QuestionContainer struct {
	Repo    QuestionRepository
	Service QuestionService
	Handler *Handler
}

func NewQuestionContainer(db *gorm.DB, categoryRepo category.CategoryRepository, answers AnswerRecorder) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, categoryRepo, answers)
	handler := NewHandler(service)

	return &QuestionContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
