// Package mail sends transactional email for appointment confirmations and
// billing alerts.
package mail

import (
	"context"
	"errors"
	"fmt"

	"voice-bridge/internal/observability"

	"github.com/go-playground/validator/v10"
	"github.com/resendlabs/resend-go"
)

// ErrInvalidRecipient is returned before any request is made when the
// recipient is not a usable address. Recipients often come from callers
// spelling an address out loud.
var ErrInvalidRecipient = errors.New("invalid email recipient")

type sender interface {
	Send(params *resend.SendEmailRequest) (resend.SendEmailResponse, error)
}

type ResendClient struct {
	emails   sender
	validate *validator.Validate
	logger   *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}
	return newClient(client.Emails, logger), nil
}

func newClient(emails sender, logger *observability.Logger) *ResendClient {
	return &ResendClient{
		emails:   emails,
		validate: validator.New(),
		logger:   logger,
	}
}

// SendEmail sends one HTML email and returns the provider message id
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	if err := c.validate.Var(to, "required,email"); err != nil {
		c.logger.Warn(ctx, "refusing to send email to invalid recipient")
		return "", fmt.Errorf("%w: %q", ErrInvalidRecipient, to)
	}

	res, err := c.emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent")
	return res.Id, nil
}
