package stats

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/question-bank/internal/answer"
	"github.com/saulo-duarte/question-bank/internal/config"
)

type StatsService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error)
	ResetStats(ctx context.Context, userID uuid.UUID) (*ResetResponse, error)
}

type statsService struct {
	answers answer.AnswerRepository
}

func NewService(answers answer.AnswerRepository) StatsService {
	return &statsService{answers: answers}
}

func (s *statsService) GetStats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error) {
	total, correct, err := s.answers.CountByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao contar respostas")
		return nil, err
	}

	return &StatsResponse{
		TotalAnswers:     total,
		CorrectAnswers:   correct,
		IncorrectAnswers: total - correct,
		Percentage:       Percentage(correct, total),
	}, nil
}

func (s *statsService) ResetStats(ctx context.Context, userID uuid.UUID) (*ResetResponse, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	deleted, err := s.answers.DeleteByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Erro ao zerar estatísticas")
		return nil, err
	}

	log.WithField("deleted_answers", deleted).Info("Estatísticas zeradas com sucesso")
	return &ResetResponse{
		Message:        "Statistics reset successfully",
		DeletedAnswers: deleted,
	}, nil
}

// Percentage returns correct/total*100 rounded to one decimal with ties to
// even, or 0 when nothing was answered.
func Percentage(correct, total int64) float64 {
	if total <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(correct).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		RoundBank(1)
	return pct.InexactFloat64()
}
