// Package apperr defines the error kinds surfaced to API callers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/question-bank/internal/config"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindConflict
	KindNotFound
)

type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func BadRequest(detail string) *Error   { return New(KindBadRequest, detail) }
func Unauthorized(detail string) *Error { return New(KindUnauthorized, detail) }
func Forbidden(detail string) *Error    { return New(KindForbidden, detail) }
func Conflict(detail string) *Error     { return New(KindConflict, detail) }
func NotFound(detail string) *Error     { return New(KindNotFound, detail) }

// KindOf returns KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps a kind to its HTTP status. Conflicts are reported as 400
// to keep the existing client contract.
func Status(kind Kind) int {
	switch kind {
	case KindBadRequest, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type body struct {
	Detail string `json:"detail"`
}

// Respond writes err as a JSON `{"detail": ...}` body.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	var e *Error
	if !errors.As(err, &e) {
		log.WithError(err).Error("Unhandled error")
		config.JSON(w, http.StatusInternalServerError, body{Detail: "internal server error"})
		return
	}

	status := Status(e.Kind)
	if e.Kind == KindUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	log.WithField("status", status).Warn(e.Detail)
	config.JSON(w, status, body{Detail: e.Detail})
}
