// Package httperr defines the error taxonomy shared by every request
// handler. Domain packages return errors built from the sentinels below;
// handlers map them to HTTP status codes with Respond. Callers should use
// errors.Is to match the sentinels.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrValidation covers malformed, missing or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated covers missing or invalid sessions.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden covers a valid session with an insufficient role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound covers absent entities, including cross-scope references.
	ErrNotFound = errors.New("not found")
	// ErrConflict covers duplicate membership and duplicate email.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable covers failed calls to external collaborators.
	ErrUnavailable = errors.New("unavailable")
)

// Error pairs a taxonomy sentinel with a terse caller-visible message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(msg string) error {
	return &Error{Kind: ErrUnauthenticated, Message: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: ErrForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

func Unavailable(msg string) error {
	return &Error{Kind: ErrUnavailable, Message: msg}
}

// Status maps err to its HTTP status code. Errors outside the taxonomy are
// treated as unexpected infrastructure faults.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the {"error": ...} envelope for err and aborts the request.
// Unexpected errors are recorded on the gin context for the request logger
// and surfaced to the caller as a generic message.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
