package apihandlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sugamrai0/AIML/internal/models"
)

// APIError defines standard error response
// Example: { "error": { "code": "bad_request", "message": "Learning goals cannot be empty" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.AbortWithStatusJSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func NotFound(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusNotFound, "not_found", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

func NotImplemented(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusNotImplemented, "not_implemented", msg)
}

// respondServiceError maps a service error onto the envelope. Validation
// messages are shown to the caller; anything unexpected is logged via
// c.Error and answered with a generic message.
func respondServiceError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		BadRequest(c, detail(err, models.ErrValidation))
	case errors.Is(err, models.ErrDisabled):
		NotImplemented(c, detail(err, models.ErrDisabled)+" is currently disabled")
	default:
		_ = c.Error(err)
		Internal(c, "Error "+op)
	}
}

// detail strips the sentinel prefix: "validation error: question cannot be
// empty" becomes "Question cannot be empty".
func detail(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	}
	return capitalize(msg)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
