package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is an expected application failure carrying the HTTP status the web
// layer should answer with. Anything that is not an *Error is treated as an
// unexpected storage/infrastructure failure and masked as a 500.
type Error struct {
	Status  int
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets sentinel comparisons work on wrapped copies.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Wrap returns a copy of e that keeps the original cause for operator logs.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Status: e.Status, Code: e.Code, Message: e.Message, cause: cause}
}

var (
	ErrDuplicateEmail      = &Error{Status: fiber.StatusConflict, Code: "DUPLICATE_EMAIL", Message: "email already registered"}
	ErrInvalidCredentials  = &Error{Status: fiber.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "invalid credentials"}
	ErrNoteNotFound        = &Error{Status: fiber.StatusNotFound, Code: "NOTE_NOT_FOUND", Message: "note not found"}
	ErrTagNotFound         = &Error{Status: fiber.StatusNotFound, Code: "TAG_NOT_FOUND", Message: "tag not found"}
	ErrForbidden           = &Error{Status: fiber.StatusForbidden, Code: "FORBIDDEN", Message: "you do not own this note"}
	ErrConstraintViolation = &Error{Status: fiber.StatusConflict, Code: "CONSTRAINT_VIOLATION", Message: "value already exists"}
	ErrTooManyAttempts     = &Error{Status: fiber.StatusTooManyRequests, Code: "TOO_MANY_ATTEMPTS", Message: "too many sign-in attempts, try again later"}
	ErrInvalidToken        = &Error{Status: fiber.StatusUnauthorized, Code: "INVALID_TOKEN", Message: "invalid or expired token"}
)
