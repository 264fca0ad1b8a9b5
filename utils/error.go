package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ValidationError rejects malformed input before any computation runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// NotFoundError reports an unknown provider, booking, route or stop.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found: " + e.ID
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports an invalid lifecycle transition or a write-time
// overlap failure.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

// UpstreamDegradedError reports a slow or unavailable routing provider. It is
// never fatal: callers convert it into fail-closed feasibility or an
// "estimated" route flag.
type UpstreamDegradedError struct {
	Op  string
	Err error
}

func (e *UpstreamDegradedError) Error() string {
	return "routing upstream degraded during " + e.Op + ": " + e.Err.Error()
}

func (e *UpstreamDegradedError) Unwrap() error { return e.Err }

// HandleErrors is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps engine errors to HTTP status codes.
func RespondError(c *gin.Context, err error) {
	var ve *ValidationError
	var nfe *NotFoundError
	var ce *ConflictError
	var ude *UpstreamDegradedError

	switch {
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, "invalid input", ve.Error())
	case errors.As(err, &nfe):
		JSONError(c, http.StatusNotFound, "not found", nfe.Error())
	case errors.As(err, &ce):
		JSONError(c, http.StatusConflict, "conflict", ce.Error())
	case errors.As(err, &ude):
		JSONError(c, http.StatusServiceUnavailable, "routing upstream degraded", ude.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
