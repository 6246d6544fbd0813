package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/question-bank/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AdminOnly)

	r.Post("/categories", h.CreateCategory)
	r.Delete("/categories/{id}", h.DeleteCategory)
	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Post("/questions/bulk", h.CreateQuestionsBulk)
	r.Delete("/questions/{id}", h.DeleteQuestion)
	return r
}
