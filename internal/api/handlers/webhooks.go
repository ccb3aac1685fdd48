package handlers

import (
	"context"
	"encoding/xml"
	"log"
	"net/http"

	"dispatch-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// twimlMessage is the TwiML reply for inbound SMS/WhatsApp webhooks.
type twimlMessage struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// twimlVoice is the TwiML reply for inbound voice calls.
type twimlVoice struct {
	XMLName xml.Name  `xml:"Response"`
	Say     twimlSay  `xml:"Say"`
	Hangup  *struct{} `xml:"Hangup"`
}

type twimlSay struct {
	Voice string `xml:"voice,attr"`
	Text  string `xml:",chardata"`
}

// WebhookHandler holds dependencies for the Twilio inbound webhooks.
type WebhookHandler struct {
	inbound    services.InboundService
	jobService services.JobService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(inbound services.InboundService, jobService services.JobService) *WebhookHandler {
	return &WebhookHandler{
		inbound:    inbound,
		jobService: jobService,
	}
}

// SMSIncoming handles Twilio's inbound message webhook. The reply always
// goes back as TwiML with status 200 so Twilio relays it to the sender,
// even when interpretation failed.
func (h *WebhookHandler) SMSIncoming(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")

	result, err := h.inbound.HandleMessage(c.Request.Context(), from, body)
	if err != nil {
		log.Printf("Error handling inbound message from %s: %v", from, err)
		c.XML(http.StatusOK, twimlMessage{Message: "Sorry, something went wrong processing your message. Please try again."})
		return
	}

	if result.Job != nil {
		jobID := result.Job.ID
		go func() {
			if err := h.jobService.BroadcastJob(context.Background(), jobID); err != nil {
				log.Printf("Error broadcasting inbound job %d: %v", jobID, err)
			}
		}()
	}

	c.XML(http.StatusOK, twimlMessage{Message: result.Reply})
}

// VoiceIncoming answers inbound calls with a static redirect to messaging.
func (h *WebhookHandler) VoiceIncoming(c *gin.Context) {
	c.XML(http.StatusOK, twimlVoice{
		Say: twimlSay{
			Voice: "alice",
			Text:  "Thank you for calling. This line does not take voice requests. Please send us a WhatsApp or text message with your location and the issue, and we will dispatch a plumber.",
		},
		Hangup: &struct{}{},
	})
}
