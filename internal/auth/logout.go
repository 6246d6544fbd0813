package auth

import (
	"net/http"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/config"
)

type Handler struct {
	denylist Denylist
}

func NewHandler(denylist Denylist) *Handler {
	return &Handler{denylist: denylist}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	token, ok := BearerToken(r)
	if !ok {
		apperr.Respond(w, r, ErrNotAuthenticated)
		return
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		apperr.Respond(w, r, apperr.Unauthorized("Could not validate credentials"))
		return
	}

	if err := h.denylist.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		log.WithError(err).Error("Failed to revoke token")
		apperr.Respond(w, r, err)
		return
	}

	log.WithField("user_id", claims.UserID).Info("Token revoked")
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
