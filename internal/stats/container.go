package stats

import "github.com/saulo-duarte/question-bank/internal/answer"

type StatsContainer struct {
	Handler *Handler
}

func NewStatsContainer(answers answer.AnswerRepository) *StatsContainer {
	service := NewService(answers)
	handler := NewHandler(service)

	return &StatsContainer{
		Handler: handler,
	}
}
