package user

import (
	"net/http"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

// Register godoc
// @Summary  Register a new user
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body CredentialsDTO true "Credentials"
// @Success  200 {object} User
// @Failure  400 {object} map[string]string
// @Router   /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto CredentialsDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		apperr.Respond(w, r, apperr.BadRequest(err.Error()))
		return
	}

	u, err := h.service.Register(r.Context(), dto.Email, dto.Password)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

// Login godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body CredentialsDTO true "Credentials"
// @Success  200 {object} TokenResponse
// @Failure  401 {object} map[string]string
// @Router   /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto CredentialsDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		apperr.Respond(w, r, apperr.BadRequest(err.Error()))
		return
	}

	token, err := h.service.Login(r.Context(), dto.Email, dto.Password)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, token)
}

// Me godoc
// @Summary  Current user
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} User
// @Router   /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetPrincipalFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	u, err := h.service.GetByID(r.Context(), principal.ID)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
