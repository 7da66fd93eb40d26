package handler

import (
	"context"
	"io"
	"net/http"

	"voice-bridge/internal/apierrors"
	"voice-bridge/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// maxWebhookBytes caps the body read from Stripe
const maxWebhookBytes = 65536

// WebhookProcessor applies verified Stripe events
type WebhookProcessor interface {
	HandleWebhook(ctx context.Context, event stripe.Event) error
}

type Handler struct {
	processor     WebhookProcessor
	webhookSecret string
	logger        *observability.Logger
}

func New(processor WebhookProcessor, webhookSecret string, logger *observability.Logger) Handler {
	return Handler{processor: processor, webhookSecret: webhookSecret, logger: logger}
}

// HandleWebhook verifies the Stripe signature and hands the event to billing
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "failed to read request body")
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "missing Stripe-Signature header")
		return
	}
	event, err := webhook.ConstructEvent(payload, signatureHeader, h.webhookSecret)
	if err != nil {
		h.logger.Warn(ctx, "rejected stripe webhook: "+err.Error())
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "invalid webhook signature")
		return
	}

	if err := h.processor.HandleWebhook(ctx, event); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
