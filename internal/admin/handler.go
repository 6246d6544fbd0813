package admin

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/config"
	"github.com/saulo-duarte/question-bank/internal/question"
)

type Handler struct {
	service AdminService
}

func NewHandler(s AdminService) *Handler {
	return &Handler{service: s}
}

// CreateCategory godoc
// @Summary  Create a category
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body CategoryDTO true "Category"
// @Success  200 {object} category.Category
// @Failure  400 {object} map[string]string
// @Failure  403 {object} map[string]string
// @Router   /api/admin/categories [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var dto CategoryDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		apperr.Respond(w, r, apperr.BadRequest(err.Error()))
		return
	}

	c, err := h.service.CreateCategory(r.Context(), dto.Name)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, c)
}

// DeleteCategory godoc
// @Summary  Delete a category; its questions become uncategorised
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Category id"
// @Success  200 {object} MessageResponse
// @Failure  404 {object} map[string]string
// @Router   /api/admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := question.ParseID(r, "id")
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

// CreateQuestion godoc
// @Summary  Create a question
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body question.QuestionInput true "Question"
// @Success  200 {object} question.QuestionResponse
// @Failure  400 {object} map[string]string
// @Router   /api/admin/questions [post]
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var in question.QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apperr.Respond(w, r, apperr.BadRequest("invalid request body"))
		return
	}

	q, err := h.service.CreateQuestion(r.Context(), in)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, question.NewQuestionResponse(q, true))
}

// CreateQuestionsBulk godoc
// @Summary  Create many questions at once; all or nothing
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body []question.QuestionInput true "Questions"
// @Success  200 {array} question.QuestionResponse
// @Failure  400 {object} map[string]string
// @Router   /api/admin/questions/bulk [post]
func (h *Handler) CreateQuestionsBulk(w http.ResponseWriter, r *http.Request) {
	var in []question.QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apperr.Respond(w, r, apperr.BadRequest("invalid request body"))
		return
	}

	questions, err := h.service.CreateQuestionsBulk(r.Context(), in)
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, question.NewQuestionResponses(questions, true))
}

// ListQuestions godoc
// @Summary  List every question with its correct answer
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} question.QuestionResponse
// @Router   /api/admin/questions [get]
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListQuestions(r.Context())
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, question.NewQuestionResponses(questions, true))
}

// DeleteQuestion godoc
// @Summary  Delete a question and the answers recorded for it
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Question id"
// @Success  200 {object} MessageResponse
// @Failure  404 {object} map[string]string
// @Router   /api/admin/questions/{id} [delete]
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := question.ParseID(r, "id")
	if err != nil {
		apperr.Respond(w, r, err)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		apperr.Respond(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, MessageResponse{Message: "Question deleted successfully"})
}
