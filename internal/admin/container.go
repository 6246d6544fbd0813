package admin

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/category"
	"github.com/saulo-duarte/question-bank/internal/question"
)

type AdminContainer struct {
	Service AdminService
	Handler *Handler
}

func NewAdminContainer(db *gorm.DB, categoryRepo category.CategoryRepository, questionRepo question.QuestionRepository) *AdminContainer {
	service := NewService(db, categoryRepo, questionRepo)
	handler := NewHandler(service)

	return &AdminContainer{
		Service: service,
		Handler: handler,
	}
}
