package handler

import (
	"errors"
	"fmt"
	"net/http"

	"voice-bridge/internal/apierrors"
	"voice-bridge/internal/callsession"
	"voice-bridge/internal/clients/telephony"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"

	"github.com/gin-gonic/gin"
)

// IncomingCallRequest is the subset of Twilio's voice webhook form we use
type IncomingCallRequest struct {
	CallSid string `form:"CallSid" binding:"required"`
	To      string `form:"To" binding:"required"`
	From    string `form:"From"`
}

// HandleIncomingCall answers Twilio's voice webhook with TwiML that either
// refuses the call or connects it to the media stream endpoint.
func (h *Handler) HandleIncomingCall(c *gin.Context) {
	ctx := c.Request.Context()

	if err := c.Request.ParseForm(); err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid form body")
		return
	}
	if !h.validSignature(c) {
		h.logger.Warn(ctx, "rejecting voice webhook with invalid signature")
		apierrors.Unauthorized(c, "Invalid Twilio signature")
		return
	}

	var req IncomingCallRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: req.CallSid},
		observability.Field{Key: "dialed_number", Value: req.To},
	)
	h.logger.Info(ctx, "incoming call")

	_, err := h.agents.GetAgentByPhoneNumber(ctx, req.To)
	if errors.Is(err, store.ErrNotFound) {
		h.logger.Info(ctx, "no agent configured on dialed number")
		twiml, err := telephony.SayAndHangupTwiML(callsession.MessageAgentNotFound)
		if err != nil {
			apierrors.RespondWithError(c, err)
			return
		}
		h.respondTwiML(c, twiml)
		return
	}
	if err != nil {
		h.logger.Error(ctx, "failed to resolve agent", err)
		apierrors.RespondWithError(c, err)
		return
	}

	params := map[string]string{
		"dialed_number": req.To,
		"caller_number": req.From,
	}
	if h.tokens != nil {
		token, err := h.tokens.Mint(req.CallSid, req.To, req.From)
		if err != nil {
			h.logger.Error(ctx, "failed to mint stream token", err)
			apierrors.RespondWithError(c, err)
			return
		}
		params["token"] = token
	}

	twiml, err := telephony.ConnectStreamTwiML(ConnectingPrompt, h.streamURL(), params)
	if err != nil {
		h.logger.Error(ctx, "failed to build stream twiml", err)
		apierrors.RespondWithError(c, err)
		return
	}
	h.respondTwiML(c, twiml)
}

func (h *Handler) respondTwiML(c *gin.Context, twiml string) {
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, twiml)
}

func (h *Handler) streamURL() string {
	return fmt.Sprintf("wss://%s/media-stream", h.publicHost)
}

// validSignature checks X-Twilio-Signature against the public URL Twilio
// called and the posted form.
func (h *Handler) validSignature(c *gin.Context) bool {
	if h.validator == nil {
		return true
	}
	url := fmt.Sprintf("https://%s%s", h.publicHost, c.Request.URL.RequestURI())
	params := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return h.validator.Validate(url, params, c.GetHeader("X-Twilio-Signature"))
}
