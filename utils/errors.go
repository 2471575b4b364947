package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorKind classifies a failure so callers can branch on remediation.
type ErrorKind int

const (
	KindValidation ErrorKind = iota // bad input, caller must correct it
	KindNotFound                    // referenced entity does not exist
	KindConflict                    // a concurrency hazard materialized (slot taken, duplicate, capacity)
	KindStorage                     // the persistence layer failed
	KindUpstream                    // an external collaborator failed
)

// Error is the discriminated failure result every action returns instead of a
// raw error. Message is safe to show a user; Err carries the internal cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func StorageError(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

func UpstreamError(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// KindOf extracts the kind from any error; unclassified errors count as storage.
func KindOf(err error) ErrorKind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RespondError translates an action failure into an HTTP response. Validation
// and not-found messages pass through verbatim; storage and upstream causes
// are logged server-side and replaced with a generic message.
func RespondError(c *fiber.Ctx, err error) error {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = StorageError("Something went wrong, please try again", err)
	}

	switch appErr.Kind {
	case KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: appErr.Message})
	case KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Message: appErr.Message})
	case KindConflict:
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Message: appErr.Message})
	case KindUpstream:
		GetLogger().Error("upstream failure", zap.String("message", appErr.Message), zap.Error(appErr.Err))
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Message: "Service temporarily unavailable, please try again"})
	default:
		GetLogger().Error("storage failure", zap.String("message", appErr.Message), zap.Error(appErr.Err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Message: "Something went wrong, please try again"})
	}
}
