package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListQuestions)
	r.Get("/categories", h.ListCategories)
	r.Get("/{id}", h.GetQuestion)
	r.Post("/{id}/answer", h.SubmitAnswer)
	return r
}
