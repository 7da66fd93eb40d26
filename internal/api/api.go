package api

import (
	"net/http"

	billingHandler "voice-bridge/internal/billing/handler"
	voiceCallHandler "voice-bridge/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	voiceCallHandler voiceCallHandler.Handler
	billingHandler   *billingHandler.Handler
}

// New builds the route table. billingHandler may be nil when top-ups are not
// configured.
func New(router *gin.RouterGroup, voiceCallHandler voiceCallHandler.Handler, billingHandler *billingHandler.Handler) API {
	return API{
		router:           router,
		voiceCallHandler: voiceCallHandler,
		billingHandler:   billingHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Twilio webhooks
	a.router.POST("/incoming-call", a.voiceCallHandler.HandleIncomingCall)
	a.router.GET("/media-stream", a.voiceCallHandler.HandleMediaStream)

	apiGroup := a.router.Group("/api")
	if a.billingHandler != nil {
		apiGroup.POST("/billing/webhook", a.billingHandler.HandleWebhook)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
