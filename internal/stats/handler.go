package stats

import (
	"net/http"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/config"
)

type Handler struct {
	service StatsService
}

func NewHandler(s StatsService) *Handler {
	return &Handler{service: s}
}

// GetStats godoc
// @Summary  Caller's answer statistics
// @Tags     statistics
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} StatsResponse
// @Router   /api/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.GetPrincipalFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	stats, err := h.service.GetStats(r.Context(), caller.ID)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

// ResetStats godoc
// @Summary  Delete the caller's answer history
// @Tags     statistics
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} ResetResponse
// @Router   /api/stats/reset [delete]
func (h *Handler) ResetStats(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.GetPrincipalFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	result, err := h.service.ResetStats(r.Context(), caller.ID)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
