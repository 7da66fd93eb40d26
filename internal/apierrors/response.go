package apierrors

import (
	"errors"
	"net/http"

	"voice-bridge/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondWithError maps err and sends a sanitized JSON response. The
// processor has already logged the detailed error; this logs the response
// for request correlation.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)
	if apiErr.Internal != nil && apiErr.StatusCode >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed", apiErr.Internal)
	}
	respond(c, apiErr.StatusCode, apiErr.Code, apiErr.Message)
}

// RespondWithValidationError handles gin binding and validation errors
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Info(observability.WithFields(ctx, observability.Field{Key: "validation_error", Value: err.Error()}),
			"validation failed")
		respond(c, http.StatusBadRequest, CodeInvalidInput, buildValidationMessage(validationErrs))
		return
	}

	// Not a validation error, most likely malformed JSON
	logger.Info(ctx, "request binding failed")
	respond(c, http.StatusBadRequest, CodeInvalidInput, "Invalid request format. Please check your JSON syntax.")
}
