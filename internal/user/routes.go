package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, authenticate func(http.Handler) http.Handler, logout http.HandlerFunc) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/me", h.Me)
		r.Post("/logout", logout)
	})
	return r
}
