package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/store"
)

// ErrResumeNotFound indicates no stored resume has the requested ID.
type ErrResumeNotFound struct {
	ID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadUpload indicates a malformed or unsupported upload.
type ErrBadUpload struct {
	Message string
}

func (e *ErrBadUpload) Error() string {
	return "bad upload: " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var notFound *ErrResumeNotFound
	switch {
	case errors.As(err, &notFound), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ingestion.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	}

	switch err.(type) {
	case *ErrValidation, *ErrBadUpload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
