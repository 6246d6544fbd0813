package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/question-bank/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"DATABASE_DSN", "ACCESS_TOKEN_EXPIRE_MINUTES", "REDIS_ADDR", "CORS_ALLOWED_ORIGINS", "DB_MAX_OPEN_CONNS"} {
			t.Setenv(key, "")
		}

		cfg := config.Load()
		require.Empty(t, cfg.DatabaseDSN)
		require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
		require.Equal(t, 25, cfg.DBMaxOpenConns)
		require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	})

	t.Run("FromEnvironment", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "postgres://quiz@localhost/quiz")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
		t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

		cfg := config.Load()
		require.Equal(t, "postgres://quiz@localhost/quiz", cfg.DatabaseDSN)
		require.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
		require.Equal(t, "localhost:6379", cfg.RedisAddr)
		require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
		require.Equal(t, 25, cfg.DBMaxOpenConns)
	})
}

func TestValidate(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"max=3"`
	}

	require.NoError(t, config.Validate(&payload{Email: "a@b.co", Name: "abc"}))

	err := config.Validate(&payload{Name: "abcd"})
	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"email", "name"}, verr.Fields)
	require.EqualError(t, err, "email is required; name must be at most 3 characters")

	err = config.Validate(&payload{Email: "nope"})
	require.EqualError(t, err, "email must be a valid email address")
}
