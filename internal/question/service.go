package question

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/category"
	"github.com/saulo-duarte/question-bank/internal/config"
)

var (
	ErrQuestionNotFound = apperr.NotFound("Question not found")
	ErrInvalidAnswer    = apperr.BadRequest("Answer must be A, B, C, or D")
)

// AnswerRecorder persists a submitted answer.
type AnswerRecorder interface {
	Record(ctx context.Context, userID, questionID uuid.UUID, selected string, isCorrect bool) error
}

type QuestionService interface {
	ListCategories(ctx context.Context) ([]*category.Category, error)
	ListQuestions(ctx context.Context, caller *auth.Principal, f Filter) ([]QuestionResponse, error)
	GetQuestion(ctx context.Context, caller *auth.Principal, id uuid.UUID) (*QuestionResponse, error)
	SubmitAnswer(ctx context.Context, caller *auth.Principal, id uuid.UUID, selected string) (*AnswerResult, error)
}

type questionService struct {
	repo         QuestionRepository
	categoryRepo category.CategoryRepository
	answers      AnswerRecorder
}

func NewService(repo QuestionRepository, categoryRepo category.CategoryRepository, answers AnswerRecorder) QuestionService {
	return &questionService{
		repo:         repo,
		categoryRepo: categoryRepo,
		answers:      answers,
	}
}

func (s *questionService) ListCategories(ctx context.Context) ([]*category.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar categorias")
		return nil, err
	}
	return categories, nil
}

func (s *questionService) ListQuestions(ctx context.Context, caller *auth.Principal, f Filter) ([]QuestionResponse, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.List(ctx, f)
	if err != nil {
		log.WithError(err).Error("Erro ao listar perguntas")
		return nil, err
	}

	return NewQuestionResponses(questions, caller.IsAdmin), nil
}

func (s *questionService) GetQuestion(ctx context.Context, caller *auth.Principal, id uuid.UUID) (*QuestionResponse, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := NewQuestionResponse(q, caller.IsAdmin)
	return &resp, nil
}

func (s *questionService) SubmitAnswer(ctx context.Context, caller *auth.Principal, id uuid.UUID, selected string) (*AnswerResult, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":     caller.ID,
		"question_id": id,
	})

	choice := Option(selected)
	if !choice.IsValid() {
		return nil, ErrInvalidAnswer
	}

	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	isCorrect := choice == q.CorrectAnswer
	if err := s.answers.Record(ctx, caller.ID, q.ID, string(choice), isCorrect); err != nil {
		log.WithError(err).Error("Erro ao registrar resposta")
		return nil, err
	}

	log.WithField("is_correct", isCorrect).Info("Resposta registrada com sucesso")
	return &AnswerResult{
		IsCorrect:      isCorrect,
		CorrectAnswer:  q.CorrectAnswer,
		SelectedAnswer: choice,
	}, nil
}

func (s *questionService) find(ctx context.Context, id uuid.UUID) (*Question, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar pergunta")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}
