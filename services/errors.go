package services

import (
	"errors"
	"strings"

	"stayease-backend/repositories"
)

var (
	ErrNotFound           = repositories.ErrNotFound
	ErrDuplicate          = repositories.ErrDuplicate
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("not allowed to modify this resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnavailable        = errors.New("property is already booked for these dates")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when input is well-formed JSON but breaks a rule.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func invalidField(field, rule, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule, Message: message}}}
}

// authorizeOwner runs the mutation gate: no session, then wrong owner.
func authorizeOwner(ownerID, userID uint) error {
	if userID == 0 {
		return ErrUnauthorized
	}
	if ownerID != userID {
		return ErrForbidden
	}
	return nil
}
