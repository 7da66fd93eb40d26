package handler

import (
	"errors"

	"voice-bridge/internal/callsession"
	"voice-bridge/internal/voicecall/twilio"

	"github.com/gin-gonic/gin"
)

// HandleMediaStream upgrades Twilio's media stream connection and bridges it
// to the speech AI until the call closes.
func (h *Handler) HandleMediaStream(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "websocket upgrade failed", err)
		return
	}
	stream := twilio.NewMediaStream(conn)
	defer stream.Close()

	h.logger.Info(ctx, "media stream connected")

	err = h.sessions.Serve(ctx, stream)
	var callErr *callsession.Error
	switch {
	case err == nil:
	case errors.Is(err, callsession.ErrShuttingDown):
		h.logger.Info(ctx, "refused media stream during shutdown")
	case errors.As(err, &callErr):
		h.logger.Info(ctx, "call ended: "+callErr.Error())
	default:
		h.logger.Error(ctx, "call session failed", err)
	}
}
