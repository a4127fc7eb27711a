package domain

import (
	"errors"
	"net/http"
	"strings"
)

const (
	RoleDonor     = "donor"
	RoleNGO       = "ngo"
	RoleShelter   = "shelter"
	RoleLogistics = "logistics"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

var (
	UserRoles = []string{RoleDonor, RoleNGO, RoleShelter, RoleLogistics, RoleVolunteer, RoleAdmin}

	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenNotFound = errors.New("token not found")
)

// RequestError carries the HTTP status, machine-readable code and
// user-facing message for every expected failure. Anything else that
// bubbles up from a handler becomes a generic 500.
type RequestError struct {
	Status  int
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func NewRequestError(status int, code, message string) *RequestError {
	return &RequestError{Status: status, Code: code, Message: message}
}

func BadRequest(code, message string) *RequestError {
	return NewRequestError(http.StatusBadRequest, code, message)
}

func NotFound(code, message string) *RequestError {
	return NewRequestError(http.StatusNotFound, code, message)
}

var (
	ErrUnauthorized = NewRequestError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrForbidden    = NewRequestError(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrInvalidID    = BadRequest("INVALID_ID", "Valid ID is required")
)

// MissingField builds the MISSING_<FIELD> error for a required field,
// named by its JSON key (donorId -> MISSING_DONOR_ID).
func MissingField(field string) *RequestError {
	return BadRequest("MISSING_"+UpperSnake(field), field+" is required")
}

// InvalidIntField builds the INVALID_<FIELD> error for an id-like field
// that failed integer coercion.
func InvalidIntField(field string) *RequestError {
	return BadRequest("INVALID_"+UpperSnake(field), field+" must be a valid integer")
}

// trimPtr trims a string field; empty-after-trim becomes nil so
// required-field validation treats it as absent.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// UpperSnake converts a camelCase JSON field name to the SCREAMING_SNAKE
// form used in error codes.
func UpperSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
