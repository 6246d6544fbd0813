package question

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/config"
)

type QuestionInput struct {
	QuestionText  string     `json:"question_text" validate:"required"`
	OptionA       string     `json:"option_a" validate:"required"`
	OptionB       string     `json:"option_b" validate:"required"`
	OptionC       string     `json:"option_c" validate:"required"`
	OptionD       string     `json:"option_d" validate:"required"`
	CorrectAnswer string     `json:"correct_answer"`
	Hardness      *string    `json:"hardness"`
	CategoryID    *uuid.UUID `json:"category_id"`
}

// Validate checks the input; suffix is appended to enum failures so bulk
// imports can name the offending question.
func (in *QuestionInput) Validate(suffix string) error {
	if err := config.Validate(in); err != nil {
		return apperr.BadRequest(err.Error() + suffix)
	}
	if !Option(in.CorrectAnswer).IsValid() {
		return apperr.BadRequest("Correct answer must be A, B, C, or D" + suffix)
	}
	if h := in.hardness(); h != nil && !h.IsValid() {
		return apperr.BadRequest("Hardness must be easy, medium, or hard" + suffix)
	}
	return nil
}

func (in *QuestionInput) hardness() *Hardness {
	if in.Hardness == nil || strings.TrimSpace(*in.Hardness) == "" {
		return nil
	}
	h := Hardness(*in.Hardness)
	return &h
}

func (in *QuestionInput) ToEntity() *Question {
	return &Question{
		QuestionText:  in.QuestionText,
		OptionA:       in.OptionA,
		OptionB:       in.OptionB,
		OptionC:       in.OptionC,
		OptionD:       in.OptionD,
		CorrectAnswer: Option(in.CorrectAnswer),
		Hardness:      in.hardness(),
		CategoryID:    in.CategoryID,
	}
}

func ForQuestion(text string) string {
	return fmt.Sprintf(" for question: %s", text)
}

type QuestionResponse struct {
	ID            uuid.UUID  `json:"id"`
	QuestionText  string     `json:"question_text"`
	OptionA       string     `json:"option_a"`
	OptionB       string     `json:"option_b"`
	OptionC       string     `json:"option_c"`
	OptionD       string     `json:"option_d"`
	CorrectAnswer *Option    `json:"correct_answer"`
	Hardness      *Hardness  `json:"hardness"`
	CategoryID    *uuid.UUID `json:"category_id"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewQuestionResponse copies q; the correct answer is only copied when
// revealAnswer is set.
func NewQuestionResponse(q *Question, revealAnswer bool) QuestionResponse {
	resp := QuestionResponse{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		OptionA:      q.OptionA,
		OptionB:      q.OptionB,
		OptionC:      q.OptionC,
		OptionD:      q.OptionD,
		Hardness:     q.Hardness,
		CategoryID:   q.CategoryID,
		CreatedAt:    q.CreatedAt,
	}
	if revealAnswer {
		answer := q.CorrectAnswer
		resp.CorrectAnswer = &answer
	}
	return resp
}

func NewQuestionResponses(questions []*Question, revealAnswer bool) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q, revealAnswer))
	}
	return out
}

type Filter struct {
	CategoryID *uuid.UUID
	Hardness   *Hardness
}

type AnswerDTO struct {
	SelectedAnswer string `json:"selected_answer"`
}

type AnswerResult struct {
	IsCorrect      bool   `json:"is_correct"`
	CorrectAnswer  Option `json:"correct_answer"`
	SelectedAnswer Option `json:"selected_answer"`
}
