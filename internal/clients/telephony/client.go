// Package telephony drives live calls and SMS through the Twilio REST API.
package telephony

import (
	"context"
	"errors"
	"fmt"

	"voice-bridge/internal/observability"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrMissingCredentials = errors.New("twilio account sid and auth token are required")

// api is the subset of the Twilio REST API used by the client
type api interface {
	UpdateCall(sid string, params *openapi.UpdateCallParams) (*openapi.ApiV2010Call, error)
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type Client struct {
	api    api
	logger *observability.Logger
}

func NewClient(accountSID, authToken string, logger *observability.Logger) (*Client, error) {
	if accountSID == "" || authToken == "" {
		return nil, ErrMissingCredentials
	}
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{api: rest.Api, logger: logger}, nil
}

// SayAndHangup replaces the live call's instructions so Twilio speaks the
// message and hangs up. The media stream closes as a side effect.
func (c *Client) SayAndHangup(ctx context.Context, callSid, message string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callSid})

	twimlResult, err := SayAndHangupTwiML(message)
	if err != nil {
		return err
	}

	params := &openapi.UpdateCallParams{}
	params.SetTwiml(twimlResult)
	if _, err := c.api.UpdateCall(callSid, params); err != nil {
		c.logger.Error(ctx, "failed to update call", err)
		return fmt.Errorf("failed to update call %s: %w", callSid, err)
	}

	c.logger.Info(ctx, "call redirected to say and hangup")
	return nil
}

// SendSMS sends a text message and returns its sid
func (c *Client) SendSMS(ctx context.Context, from, to, body string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "sms_to", Value: to},
		observability.Field{Key: "sms_from", Value: from},
	)

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	msg, err := c.api.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send sms", err)
		return "", fmt.Errorf("failed to send sms: %w", err)
	}

	sid := ""
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	c.logger.Info(ctx, "sms sent")
	return sid, nil
}
