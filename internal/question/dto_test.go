package question_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/question"
	"github.com/saulo-duarte/question-bank/internal/testutil"
)

func TestQuestionInputValidate(t *testing.T) {
	str := func(s string) *string { return &s }

	cases := []struct {
		name   string
		mutate func(*question.QuestionInput)
		detail string
	}{
		{"Valid", func(*question.QuestionInput) {}, ""},
		{"ValidWithHardness", func(in *question.QuestionInput) { in.Hardness = str("medium") }, ""},
		{"EmptyHardnessIsAbsent", func(in *question.QuestionInput) { in.Hardness = str("") }, ""},
		{"BadCorrectAnswer", func(in *question.QuestionInput) { in.CorrectAnswer = "E" }, "Correct answer must be A, B, C, or D"},
		{"LowercaseCorrectAnswer", func(in *question.QuestionInput) { in.CorrectAnswer = "a" }, "Correct answer must be A, B, C, or D"},
		{"BadHardness", func(in *question.QuestionInput) { in.Hardness = str("extreme") }, "Hardness must be easy, medium, or hard"},
		{"MissingText", func(in *question.QuestionInput) { in.QuestionText = "" }, "question_text is required"},
		{"MissingOption", func(in *question.QuestionInput) { in.OptionC = "" }, "option_c is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := testutil.QuestionInput("2+2?", "B")
			tc.mutate(&in)

			err := in.Validate("")
			if tc.detail == "" {
				require.NoError(t, err)
				return
			}
			require.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
			require.Equal(t, tc.detail, err.Error())
		})
	}

	t.Run("SuffixNamesQuestion", func(t *testing.T) {
		in := testutil.QuestionInput("2+2?", "E")
		err := in.Validate(question.ForQuestion(in.QuestionText))
		require.EqualError(t, err, "Correct answer must be A, B, C, or D for question: 2+2?")
	})
}

func TestNewQuestionResponse(t *testing.T) {
	hard := question.HardnessHard
	q := &question.Question{QuestionText: "2+2?", CorrectAnswer: question.OptionB, Hardness: &hard}

	hidden := question.NewQuestionResponse(q, false)
	require.Nil(t, hidden.CorrectAnswer)
	require.Equal(t, &hard, hidden.Hardness)
	require.Equal(t, question.OptionB, q.CorrectAnswer)

	shown := question.NewQuestionResponse(q, true)
	require.NotNil(t, shown.CorrectAnswer)
	require.Equal(t, question.OptionB, *shown.CorrectAnswer)
}
