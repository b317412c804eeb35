package utils

import (
	"errors"
	"net/http"
)

var (
	ErrMissingConfig   = errors.New("missing_config")
	ErrInvalidBody     = errors.New("invalid_body")
	ErrSchemaViolation = errors.New("schema_violation")
	ErrTokenExpired    = errors.New("token_expired")
)

// AppError carries a status and public error code from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
		return
	}
	RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
}
