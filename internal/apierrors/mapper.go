package apierrors

import (
	"errors"
	"net/http"
	"strings"

	billingProcessor "voice-bridge/internal/billing/processor"
	"voice-bridge/internal/clients/payments"
	"voice-bridge/internal/store"
	"voice-bridge/internal/voicecall/streamtoken"
)

// APIError is a sanitized error ready to be sent to a client
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Internal is logged but never sent
	Internal error
}

func (e *APIError) Error() string {
	return e.Message
}

// MapError converts domain errors to APIErrors. Unknown errors become a
// sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return &APIError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: "Resource not found"}

	case errors.Is(err, billingProcessor.ErrInsufficientBalance), errors.Is(err, store.ErrInsufficientFunds):
		return &APIError{StatusCode: http.StatusPaymentRequired, Code: CodePaymentRequired, Message: "Insufficient balance"}

	case errors.Is(err, payments.ErrCardDeclined):
		return &APIError{StatusCode: http.StatusPaymentRequired, Code: CodeCardDeclined, Message: "Card was declined"}

	case errors.Is(err, payments.ErrInvalidAmount):
		return &APIError{StatusCode: http.StatusBadRequest, Code: CodeInvalidInput, Message: "Amount must be positive"}

	case errors.Is(err, streamtoken.ErrInvalidStreamToken), errors.Is(err, streamtoken.ErrExpiredStreamToken):
		return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: "Invalid stream token"}

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError identifies upstream provider failures by message
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "stripe") || strings.Contains(errMsg, "payment"):
		return &APIError{
			StatusCode: http.StatusServiceUnavailable,
			Code:       CodePaymentProviderError,
			Message:    "Payment provider is temporarily unavailable. Please try again later.",
			Internal:   err,
		}
	case strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service"):
		return &APIError{
			StatusCode: http.StatusServiceUnavailable,
			Code:       CodeEmailServiceError,
			Message:    "Email service is temporarily unavailable. Please try again later.",
			Internal:   err,
		}
	case strings.Contains(errMsg, "realtime") || strings.Contains(errMsg, "openai"):
		return &APIError{
			StatusCode: http.StatusServiceUnavailable,
			Code:       CodeAIServiceError,
			Message:    "AI service is temporarily unavailable. Please try again later.",
			Internal:   err,
		}
	case strings.Contains(errMsg, "twilio"):
		return &APIError{
			StatusCode: http.StatusServiceUnavailable,
			Code:       CodeTelephonyError,
			Message:    "Telephony provider is temporarily unavailable. Please try again later.",
			Internal:   err,
		}
	}

	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   err,
	}
}
