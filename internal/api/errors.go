package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK

	// Not found errors
	case errors.Is(err, service.ErrListNotFound),
		errors.Is(err, service.ErrEntryNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrEntryNotInList),
		errors.Is(err, service.ErrDuplicateListName),
		store.IsDuplicateError(err),
		errors.Is(err, store.ErrInvalidEntity),
		domain.IsValidationError(err),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	var fieldErr *domain.ValidationError

	switch {
	// Not found errors
	case errors.Is(err, service.ErrListNotFound):
		return "List not found"
	case errors.Is(err, service.ErrEntryNotFound):
		return "Entry not found"

	// Bad request errors
	case errors.Is(err, service.ErrEntryNotInList):
		return "Entry does not belong to this list"
	case errors.Is(err, service.ErrDuplicateListName),
		errors.Is(err, store.ErrListNameExists):
		return "A list with this name already exists"
	case errors.Is(err, domain.ErrListNameEmpty):
		return "List name is required"
	case errors.Is(err, domain.ErrListNameTooLong):
		return fmt.Sprintf("List name cannot exceed %d characters", domain.MaxListNameLength)
	case errors.Is(err, domain.ErrEntryDescriptionMissing):
		return "Entry description is required"
	case errors.Is(err, domain.ErrEntryDescriptionTooLong):
		return fmt.Sprintf("Entry description cannot exceed %d characters", domain.MaxEntryDescriptionLength)
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.As(err, &fieldErr):
		return fmt.Sprintf("Invalid %s", fieldErr.Field)
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case domain.IsValidationError(err):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator failures into a short message
// naming the first offending field, without echoing submitted values.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	first := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for a failed request. Not-found
// conditions answer with an empty body; other failures carry a JSON error
// body. fallbackMessage replaces the generic message for server errors when
// set.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)

	if status == http.StatusNotFound {
		logger.FromContext(r.Context()).Debug("resource not found",
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method),
			slog.String("error", redact.Error(err)))
		shared.RespondWithStatus(w, status)
		return
	}

	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
