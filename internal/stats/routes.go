package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetStats)
	r.Delete("/reset", h.ResetStats)
	return r
}
