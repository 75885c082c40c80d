// Package controller holds the per-screen view-state controllers. Each
// controller owns the loading/error/success flags and form fields for one
// flow, calls the API operations, and converts every failure into a
// user-visible message. Errors never propagate out of a controller method.
package controller

import (
	"errors"

	"github.com/PrateekLewis/blog-application/internal/api"
)

// ValidationError is a local, pre-network form failure. When validation
// fails, no network call is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Confirmer asks the user to confirm a destructive action. Injected so that
// flows like post deletion are testable without a terminal.
type Confirmer interface {
	Confirm(message string) bool
}

// errorMessage converts an operation failure into display text: the backend
// message for API errors, the given fallback for anything else (transport
// failures and the like).
func errorMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}
