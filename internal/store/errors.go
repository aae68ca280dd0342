package store

import "net/http"

// AppError is a deliberate, structured rejection raised by an accessor. The
// error-normalization middleware emits its status and message verbatim.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrNotFound     = &AppError{Status: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest   = &AppError{Status: http.StatusBadRequest, Message: "Bad Request"}
	ErrInvalidBody  = &AppError{Status: http.StatusBadRequest, Message: "Invalid request body"}
	ErrInvalidSort  = &AppError{Status: http.StatusBadRequest, Message: "Invalid sort query"}
	ErrInvalidOrder = &AppError{Status: http.StatusBadRequest, Message: "Invalid order query"}
)
