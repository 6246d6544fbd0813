package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/auth"
)

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, denylist auth.Denylist, tokenTTL time.Duration) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, denylist, tokenTTL)
	handler := NewHandler(service)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
