package stats

type StatsResponse struct {
	TotalAnswers     int64   `json:"total_answers"`
	CorrectAnswers   int64   `json:"correct_answers"`
	IncorrectAnswers int64   `json:"incorrect_answers"`
	Percentage       float64 `json:"percentage"`
}

type ResetResponse struct {
	Message        string `json:"message"`
	DeletedAnswers int64  `json:"deleted_answers"`
}
