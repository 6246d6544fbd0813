package question_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/answer"
	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/category"
	"github.com/saulo-duarte/question-bank/internal/config"
	"github.com/saulo-duarte/question-bank/internal/question"
	"github.com/saulo-duarte/question-bank/internal/testutil"
)

func newService(t *testing.T) (question.QuestionService, *gorm.DB) {
	t.Helper()

	db := testutil.NewDB(t)
	svc := question.NewService(
		question.NewRepository(db),
		category.NewRepository(db),
		answer.NewRepository(db),
	)
	return svc, db
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Empty(t, categories)

	testutil.CreateCategory(t, db, "Science")
	testutil.CreateCategory(t, db, "Math")

	categories, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Equal(t, "Math", categories[0].Name)
	require.Equal(t, "Science", categories[1].Name)
}

func TestListQuestions(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)

	math := testutil.CreateCategory(t, db, "Math")
	science := testutil.CreateCategory(t, db, "Science")
	q1 := testutil.CreateQuestion(t, db, "2+2?", question.OptionB, testutil.WithCategory(math), testutil.WithHardness(question.HardnessEasy))
	q2 := testutil.CreateQuestion(t, db, "Integral of x?", question.OptionC, testutil.WithCategory(math), testutil.WithHardness(question.HardnessHard))
	q3 := testutil.CreateQuestion(t, db, "H2O is?", question.OptionA, testutil.WithCategory(science), testutil.WithHardness(question.HardnessEasy))
	q4 := testutil.CreateQuestion(t, db, "Uncategorised", question.OptionD)

	player := testutil.Principal(testutil.CreateUser(t, db, "player@example.com", false))
	admin := testutil.Principal(testutil.CreateUser(t, db, "admin@example.com", true))

	easy := question.HardnessEasy
	cases := []struct {
		name   string
		filter question.Filter
		want   []uuid.UUID
	}{
		{"NoFilter", question.Filter{}, []uuid.UUID{q1.ID, q2.ID, q3.ID, q4.ID}},
		{"Category", question.Filter{CategoryID: &math.ID}, []uuid.UUID{q1.ID, q2.ID}},
		{"Hardness", question.Filter{Hardness: &easy}, []uuid.UUID{q1.ID, q3.ID}},
		{"CategoryAndHardness", question.Filter{CategoryID: &math.ID, Hardness: &easy}, []uuid.UUID{q1.ID}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.ListQuestions(ctx, player, tc.filter)
			require.NoError(t, err)

			ids := make([]uuid.UUID, 0, len(got))
			for _, q := range got {
				ids = append(ids, q.ID)
				require.Nil(t, q.CorrectAnswer, "correct answer must be hidden from players")
			}
			require.ElementsMatch(t, tc.want, ids)
		})
	}

	t.Run("AdminSeesAnswers", func(t *testing.T) {
		got, err := svc.ListQuestions(ctx, admin, question.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 4)
		for _, q := range got {
			require.NotNil(t, q.CorrectAnswer)
		}
	})

	t.Run("UnknownHardnessMatchesNothing", func(t *testing.T) {
		bad := question.Hardness("impossible")
		got, err := svc.ListQuestions(ctx, player, question.Filter{Hardness: &bad})
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("RedactionDoesNotTouchStorage", func(t *testing.T) {
		_, err := svc.ListQuestions(ctx, player, question.Filter{})
		require.NoError(t, err)

		var stored question.Question
		require.NoError(t, db.First(&stored, "id = ?", q1.ID).Error)
		require.Equal(t, question.OptionB, stored.CorrectAnswer)
	})
}

func TestGetQuestion(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)

	q := testutil.CreateQuestion(t, db, "2+2?", question.OptionB)
	player := testutil.Principal(testutil.CreateUser(t, db, "player@example.com", false))
	admin := testutil.Principal(testutil.CreateUser(t, db, "admin@example.com", true))

	got, err := svc.GetQuestion(ctx, player, q.ID)
	require.NoError(t, err)
	require.Equal(t, "2+2?", got.QuestionText)
	require.Nil(t, got.CorrectAnswer)

	got, err = svc.GetQuestion(ctx, admin, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CorrectAnswer)
	require.Equal(t, question.OptionB, *got.CorrectAnswer)

	_, err = svc.GetQuestion(ctx, player, uuid.New())
	require.ErrorIs(t, err, question.ErrQuestionNotFound)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSubmitAnswer(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)

	q := testutil.CreateQuestion(t, db, "2+2?", question.OptionB)
	player := testutil.Principal(testutil.CreateUser(t, db, "player@example.com", false))

	t.Run("Correct", func(t *testing.T) {
		result, err := svc.SubmitAnswer(ctx, player, q.ID, "B")
		require.NoError(t, err)
		require.Equal(t, &question.AnswerResult{
			IsCorrect:      true,
			CorrectAnswer:  question.OptionB,
			SelectedAnswer: question.OptionB,
		}, result)
	})

	t.Run("IncorrectRevealsAnswer", func(t *testing.T) {
		result, err := svc.SubmitAnswer(ctx, player, q.ID, "C")
		require.NoError(t, err)
		require.False(t, result.IsCorrect)
		require.Equal(t, question.OptionB, result.CorrectAnswer)
		require.Equal(t, question.OptionC, result.SelectedAnswer)
	})

	t.Run("InvalidOption", func(t *testing.T) {
		for _, option := range []string{"E", "", "b", "AB"} {
			_, err := svc.SubmitAnswer(ctx, player, q.ID, option)
			require.ErrorIs(t, err, question.ErrInvalidAnswer, option)
		}
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		_, err := svc.SubmitAnswer(ctx, player, uuid.New(), "A")
		require.ErrorIs(t, err, question.ErrQuestionNotFound)
	})

	t.Run("RepeatedSubmissionsAreAllRecorded", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			result, err := svc.SubmitAnswer(ctx, player, q.ID, "B")
			require.NoError(t, err)
			require.True(t, result.IsCorrect)
		}

		var rows []answer.UserAnswer
		require.NoError(t, db.Where("user_id = ?", player.ID).Find(&rows).Error)
		require.Len(t, rows, 5)
		correct := 0
		for _, row := range rows {
			require.Equal(t, q.ID, row.QuestionID)
			if row.IsCorrect {
				correct++
			}
		}
		require.Equal(t, 4, correct)
	})
}

func TestSubmitAnswerLogsOutcome(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)

	hook := logtest.NewLocal(config.Logger)
	t.Cleanup(func() { config.Logger.ReplaceHooks(make(logrus.LevelHooks)) })

	q := testutil.CreateQuestion(t, db, "2+2?", question.OptionB)
	player := testutil.Principal(testutil.CreateUser(t, db, "player@example.com", false))

	_, err := svc.SubmitAnswer(ctx, player, q.ID, "C")
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "Resposta registrada com sucesso", entry.Message)
	require.Equal(t, false, entry.Data["is_correct"])
	require.Equal(t, q.ID, entry.Data["question_id"])
}
