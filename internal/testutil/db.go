// Package testutil opens throwaway SQLite databases with the production
// schema and seeds fixtures for package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/category"
	"github.com/saulo-duarte/question-bank/internal/database"
	"github.com/saulo-duarte/question-bank/internal/question"
	"github.com/saulo-duarte/question-bank/internal/user"
)

const (
	JWTSecret = "test-secret-with-enough-entropy-for-hs256"
	Password  = "correct horse battery staple"
)

// OpenDB returns an empty in-memory database private to the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

// NewDB returns a migrated in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := OpenDB(t)
	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

func InitAuth(t *testing.T) {
	t.Helper()

	t.Setenv("JWT_SECRET", JWTSecret)
	auth.Init()
}

func CreateUser(t *testing.T, db *gorm.DB, email string, isAdmin bool) *user.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &user.User{Email: email, HashedPassword: string(hashed), IsAdmin: isAdmin}
	require.NoError(t, db.Create(u).Error)
	return u
}

func Principal(u *user.User) *auth.Principal {
	return &auth.Principal{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}
}

func CreateCategory(t *testing.T, db *gorm.DB, name string) *category.Category {
	t.Helper()

	c := &category.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

type QuestionOpt func(*question.Question)

func WithHardness(h question.Hardness) QuestionOpt {
	return func(q *question.Question) { q.Hardness = &h }
}

func WithCategory(c *category.Category) QuestionOpt {
	return func(q *question.Question) { q.CategoryID = &c.ID }
}

func CreateQuestion(t *testing.T, db *gorm.DB, text string, correct question.Option, opts ...QuestionOpt) *question.Question {
	t.Helper()

	q := &question.Question{
		QuestionText:  text,
		OptionA:       "first",
		OptionB:       "second",
		OptionC:       "third",
		OptionD:       "fourth",
		CorrectAnswer: correct,
	}
	for _, opt := range opts {
		opt(q)
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

func QuestionInput(text, correct string) question.QuestionInput {
	return question.QuestionInput{
		QuestionText:  text,
		OptionA:       "first",
		OptionB:       "second",
		OptionC:       "third",
		OptionD:       "fourth",
		CorrectAnswer: correct,
	}
}
