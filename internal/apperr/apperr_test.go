package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/question-bank/internal/apperr"
)

func TestKindOf(t *testing.T) {
	notFound := apperr.NotFound("question not found")
	wrapped := fmt.Errorf("lookup: %w", notFound)

	require.Equal(t, apperr.KindNotFound, apperr.KindOf(wrapped))
	require.True(t, errors.Is(wrapped, notFound))
	require.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("boom")))
}

func TestRespond(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"BadRequest", apperr.BadRequest("bad"), http.StatusBadRequest, "bad"},
		{"Conflict", apperr.Conflict("Category already exists"), http.StatusBadRequest, "Category already exists"},
		{"Unauthorized", apperr.Unauthorized("nope"), http.StatusUnauthorized, "nope"},
		{"Forbidden", apperr.Forbidden("admins only"), http.StatusForbidden, "admins only"},
		{"NotFound", apperr.NotFound("missing"), http.StatusNotFound, "missing"},
		{"Internal", errors.New("db down"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			apperr.Respond(rec, req, tc.err)

			require.Equal(t, tc.status, rec.Code)
			var got map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Equal(t, tc.detail, got["detail"])
		})
	}
}
