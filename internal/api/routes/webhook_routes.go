package routes

import (
	"dispatch-engine/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the Twilio inbound webhooks. Twilio
// posts form-encoded payloads and expects TwiML back.
func RegisterWebhookRoutes(router *gin.Engine, webhookHandler *handlers.WebhookHandler) {
	webhooks := router.Group("/webhooks/twilio")
	{
		webhooks.POST("/sms-incoming", webhookHandler.SMSIncoming)
		webhooks.POST("/voice", webhookHandler.VoiceIncoming)
	}
}
