package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is a tagged application error. Expected failures (validation,
// missing records, permission checks) travel through this type so the
// error handler can map them to the right HTTP status without guessing.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

// Conflict is a duplicate-resource failure. The API contract reports it
// as a 400 like other validation failures.
func Conflict(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}

func Upstream(err error) *Error {
	return &Error{Status: fiber.StatusBadGateway, Message: fmt.Sprintf("remote catalog unavailable: %v", err)}
}

// Internal is deliberately opaque: malformed identifiers and unexpected
// faults both surface as a plain "error" so nothing internal leaks out.
func Internal() *Error {
	return &Error{Status: fiber.StatusInternalServerError, Message: "error"}
}

// As unwraps err into an *Error if possible.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
