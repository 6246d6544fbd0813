package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/testutil"
	"github.com/saulo-duarte/question-bank/internal/user"
)

func newService(t *testing.T) (user.UserService, auth.Denylist) {
	t.Helper()
	testutil.InitAuth(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	denylist := auth.NewRedisDenylist(client)

	db := testutil.NewDB(t)
	return user.NewService(user.NewRepository(db), denylist, 30*time.Minute), denylist
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	u, err := svc.Register(ctx, "Player@Example.com ", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "player@example.com", u.Email)
	require.False(t, u.IsAdmin)
	require.NotEqual(t, "s3cret", u.HashedPassword)
	require.NotZero(t, u.CreatedAt)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Register(ctx, "player@example.com", "other")
		require.ErrorIs(t, err, user.ErrEmailTaken)
		require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("DuplicateEmailDifferentCase", func(t *testing.T) {
		_, err := svc.Register(ctx, "PLAYER@example.com", "other")
		require.ErrorIs(t, err, user.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Register(ctx, "player@example.com", "s3cret")
	require.NoError(t, err)

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "s3cret")
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, "player@example.com", "wrong")
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
		require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})

	t.Run("Success", func(t *testing.T) {
		token, err := svc.Login(ctx, "player@example.com", "s3cret")
		require.NoError(t, err)
		require.Equal(t, "bearer", token.TokenType)
		require.False(t, token.IsAdmin)

		claims, err := auth.ValidateJWT(token.AccessToken)
		require.NoError(t, err)
		require.Equal(t, "player@example.com", claims.Email)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	svc, denylist := newService(t)

	registered, err := svc.Register(ctx, "player@example.com", "s3cret")
	require.NoError(t, err)
	token, err := svc.Login(ctx, "player@example.com", "s3cret")
	require.NoError(t, err)

	t.Run("ValidToken", func(t *testing.T) {
		u, err := svc.Resolve(ctx, token.AccessToken)
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "garbage")
		require.ErrorIs(t, err, user.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired, err := auth.GenerateJWT(registered.ID.String(), registered.Email, false, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, expired)
		require.ErrorIs(t, err, user.ErrInvalidToken)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		orphan, err := auth.GenerateJWT("6a1c2a8e-9a53-4c8b-bb8b-4a4f0bba0c11", "ghost@example.com", true, time.Minute)
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, orphan)
		require.ErrorIs(t, err, user.ErrInvalidToken)
	})

	t.Run("AdminFlagIsReadFromDatabase", func(t *testing.T) {
		_, err := svc.SetAdmin(ctx, "player@example.com", true)
		require.NoError(t, err)

		p, err := svc.ResolvePrincipal(ctx, token.AccessToken)
		require.NoError(t, err)
		require.True(t, p.IsAdmin)
	})

	t.Run("Revoked", func(t *testing.T) {
		claims, err := auth.ValidateJWT(token.AccessToken)
		require.NoError(t, err)
		require.NoError(t, denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time))

		_, err = svc.Resolve(ctx, token.AccessToken)
		require.ErrorIs(t, err, user.ErrInvalidToken)
	})
}

func TestSetAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.SetAdmin(ctx, "ghost@example.com", true)
	require.ErrorIs(t, err, user.ErrUserNotFound)

	registered, err := svc.Register(ctx, "player@example.com", "s3cret")
	require.NoError(t, err)

	u, err := svc.SetAdmin(ctx, "player@example.com", true)
	require.NoError(t, err)
	require.True(t, u.IsAdmin)

	stored, err := svc.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	require.True(t, stored.IsAdmin)

	token, err := svc.Login(ctx, "player@example.com", "s3cret")
	require.NoError(t, err)
	require.True(t, token.IsAdmin)

	_, err = svc.SetAdmin(ctx, "player@example.com", false)
	require.NoError(t, err)
	stored, err = svc.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	require.False(t, stored.IsAdmin)
}
