package auth_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/question-bank/internal/auth"
)

const testSecret = "a-long-and-reasonably-secure-test-secret"
const testUserID = "0b8f1e8e-3f4d-4b57-9a5d-2a0d7c1d9e11"
const testEmail = "player@example.com"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		require.Panics(t, auth.Init)
	})

	t.Run("ValidSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", testSecret)

		require.NotPanics(t, auth.Init)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, true, 5*time.Minute)
		require.NoError(t, err)

		claims, err := auth.ValidateJWT(tokenStr)
		require.NoError(t, err)
		require.Equal(t, testUserID, claims.UserID)
		require.Equal(t, testEmail, claims.Email)
		require.True(t, claims.IsAdmin)
		require.NotEmpty(t, claims.ID)
		require.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("UniqueTokenIDs", func(t *testing.T) {
		first, err := auth.GenerateJWT(testUserID, testEmail, false, time.Minute)
		require.NoError(t, err)
		second, err := auth.GenerateJWT(testUserID, testEmail, false, time.Minute)
		require.NoError(t, err)

		c1, err := auth.ValidateJWT(first)
		require.NoError(t, err)
		c2, err := auth.ValidateJWT(second)
		require.NoError(t, err)
		require.NotEqual(t, c1.ID, c2.ID)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, false, -time.Second)
		require.NoError(t, err)

		_, err = auth.ValidateJWT(tokenStr)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, false, time.Minute)
		require.NoError(t, err)

		os.Setenv("JWT_SECRET", "a-completely-different-secret-value")
		auth.Init()
		_, err = auth.ValidateJWT(tokenStr)
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()

		require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := auth.ValidateJWT("not-a-jwt")
		require.ErrorIs(t, err, jwt.ErrTokenMalformed)
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, auth.Claims{
			UserID: testUserID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		tokenStr, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = auth.ValidateJWT(tokenStr)
		require.Error(t, err)
	})
}
