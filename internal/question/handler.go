package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/config"
)

var ErrInvalidID = apperr.BadRequest("invalid id")

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

// ParseID reads the {name} URL parameter as a UUID.
func ParseID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// ListCategories godoc
// @Summary  List categories
// @Tags     questions
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} category.Category
// @Router   /api/questions/categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, categories)
}

// ListQuestions godoc
// @Summary  List questions, correct answers hidden for non-admins
// @Tags     questions
// @Produce  json
// @Security BearerAuth
// @Param    category_id query string false "Category id"
// @Param    hardness    query string false "easy, medium or hard"
// @Success  200 {array} QuestionResponse
// @Router   /api/questions [get]
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.GetPrincipalFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	var f Filter
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			apperr.Respond(w, r, apperr.BadRequest("invalid category_id"))
			return
		}
		f.CategoryID = &id
	}
	if raw := r.URL.Query().Get("hardness"); raw != "" {
		hardness := Hardness(raw)
		f.Hardness = &hardness
	}

	questions, err := h.service.ListQuestions(r.Context(), caller, f)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary  Get one question
// @Tags     questions
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Question id"
// @Success  200 {object} QuestionResponse
// @Failure  404 {object} map[string]string
// @Router   /api/questions/{id} [get]
func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.GetPrincipalFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	id, err := ParseID(r, "id")
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	q, err := h.service.GetQuestion(r.Context(), caller, id)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

// SubmitAnswer godoc
// @Summary  Answer a question
// @Tags     questions
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string    true "Question id"
// @Param    body body AnswerDTO true "Selected option"
// @Success  200 {object} AnswerResult
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /api/questions/{id}/answer [post]
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.GetPrincipalFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	id, err := ParseID(r, "id")
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	var dto AnswerDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		apperr.Respond(w, r, apperr.BadRequest("invalid request body"))
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), caller, id, dto.SelectedAnswer)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
