package notify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dispatch-engine/config"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	gomail "gopkg.in/gomail.v2"
)

// whatsAppPrefix is the channel prefix Twilio uses to distinguish a
// WhatsApp address from a bare phone number.
const whatsAppPrefix = "whatsapp:"

// Client sends WhatsApp messages through Twilio and email through SMTP.
// Either channel may be left unconfigured; sends on an unconfigured
// channel are logged and skipped, mirroring a partial deployment.
type Client struct {
	twilio       *twilio.RestClient
	whatsAppFrom string
	dialer       *gomail.Dialer
	emailFrom    string
}

var _ Notifier = (*Client)(nil)

// NewClient builds a Client from configuration. Missing Twilio credentials
// disable the chat channel; a missing SMTP host disables email.
func NewClient(twilioCfg config.TwilioConfig, smtpCfg config.SMTPConfig) *Client {
	c := &Client{
		whatsAppFrom: twilioCfg.WhatsAppFrom,
		emailFrom:    smtpCfg.From,
	}

	if twilioCfg.AccountSID != "" && twilioCfg.AuthToken != "" {
		c.twilio = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: twilioCfg.AccountSID,
			Password: twilioCfg.AuthToken,
		})
		log.Println("Twilio WhatsApp sender configured")
	} else {
		log.Println("Twilio not configured (account SID or auth token missing), chat messages disabled")
	}

	if smtpCfg.Host != "" && smtpCfg.User != "" {
		c.dialer = gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.User, smtpCfg.Password)
		log.Println("Email sender configured")
	} else {
		log.Println("Email not configured (SMTP settings missing), emails disabled")
	}

	return c
}

// SendChatMessage delivers one WhatsApp message. The recipient is a bare
// phone number; the channel prefix is added here.
func (c *Client) SendChatMessage(_ context.Context, to, body string) error {
	if c.twilio == nil || c.whatsAppFrom == "" {
		log.Printf("Twilio not configured, skipping chat message to: %s", to)
		return nil
	}
	if to == "" {
		log.Println("Skipping chat message: empty recipient")
		return nil
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(c.whatsAppFrom)
	params.SetTo(whatsAppPrefix + strings.TrimPrefix(to, whatsAppPrefix))
	params.SetBody(body)

	if _, err := c.twilio.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send to %s: %w", to, err)
	}

	log.Printf("WhatsApp message sent to %s", to)
	return nil
}

// SendEmail delivers one email with HTML and plain-text alternatives.
func (c *Client) SendEmail(_ context.Context, to, subject, htmlBody, textBody string) error {
	if c.dialer == nil {
		log.Printf("Email not configured, skipping email to: %s", to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.emailFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}

	log.Printf("Email sent to %s", to)
	return nil
}
