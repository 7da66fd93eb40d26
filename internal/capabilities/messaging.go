package capabilities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"
)

var errNoRecipient = errors.New("no phone number to text")

type messagingToolset struct {
	sms       SMSSender
	email     EmailSender
	emailFrom string
}

type smsArgs struct {
	Message string `json:"message" validate:"required,max=1600"`
	To      string `json:"to" validate:"omitempty,e164"`
}

type emailArgs struct {
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

func messagingTools(sms SMSSender, email EmailSender, emailFrom string) []Tool {
	t := &messagingToolset{sms: sms, email: email, emailFrom: emailFrom}
	var tools []Tool

	if sms != nil {
		tools = append(tools, Tool{
			Name:        "send_sms",
			Description: "Send a text message, by default to the caller's phone.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"message": map[string]any{"type": "string", "description": "Text to send"},
					"to":      map[string]any{"type": "string", "description": "E.164 number, omit to text the caller"},
				},
				"required": []string{"message"},
			},
			Handler: t.sendSMS,
		})
	}
	if email != nil && emailFrom != "" {
		tools = append(tools, Tool{
			Name:        "send_email_confirmation",
			Description: "Email the caller a written confirmation of what was agreed on the call.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"email":   map[string]any{"type": "string", "description": "Caller's email address, spelled back to confirm"},
					"subject": map[string]any{"type": "string"},
					"message": map[string]any{"type": "string", "description": "Body of the email"},
				},
				"required": []string{"email", "subject", "message"},
			},
			Handler: t.sendEmail,
		})
	}
	return tools
}

func (t *messagingToolset) sendSMS(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[smsArgs](raw)
	if err != nil {
		return nil, err
	}
	to := args.To
	if to == "" {
		to = call.CallerNumber
	}
	if to == "" {
		return nil, errNoRecipient
	}

	sid, err := t.sms.SendSMS(ctx, call.DialedNumber, to, args.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to send text: %w", err)
	}
	return map[string]any{"sent": true, "message_sid": sid}, nil
}

func (t *messagingToolset) sendEmail(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[emailArgs](raw)
	if err != nil {
		return nil, err
	}

	paragraphs := strings.Split(html.EscapeString(args.Message), "\n")
	body := "<p>" + strings.Join(paragraphs, "</p><p>") + "</p>"
	if call.AgentName != "" {
		body += fmt.Sprintf("<p>%s</p>", html.EscapeString(call.AgentName))
	}

	id, err := t.email.SendEmail(ctx, t.emailFrom, args.Email, args.Subject, body)
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}
	return map[string]any{"sent": true, "email_id": id}, nil
}
