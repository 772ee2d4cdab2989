package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Not allowed to access another user's records")

	// Cutoff domain errors
	case errors.Is(err, cutoff.ErrCutoffNotFound):
		NotFound(w, "Cutoff period not found")
	case errors.Is(err, cutoff.ErrNoCutoffPeriods):
		NotFound(w, "No cutoff periods configured")

	// DTR domain errors
	case errors.Is(err, dtr.ErrSavedDTRNotFound):
		NotFound(w, "No saved DTR for this user and cutoff")
	case errors.Is(err, dtr.ErrSupersededRun):
		Conflict(w, "DTR request was superseded by a newer selection")
	case errors.Is(err, dtr.ErrUserIDRequired):
		BadRequest(w, "User ID is required", map[string]string{"user_id": "user_id is required"})

	// Approval domain errors
	case errors.Is(err, approval.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, approval.ErrRequestAlreadyReviewed):
		Conflict(w, "Request has already been approved or rejected")
	case errors.Is(err, approval.ErrUnknownKind):
		BadRequest(w, "Unknown request kind", nil)

	// Client went away
	case errors.Is(err, context.Canceled):
		slog.Debug("Request cancelled", "error", err)
		Conflict(w, "Request was cancelled")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
