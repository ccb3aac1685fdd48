// Package notify holds the outbound messaging capability consumed by the
// job lifecycle core: WhatsApp messages to providers via Twilio and email
// to customers via SMTP. Sends are best-effort; failures are logged and
// never propagated into core state transitions.
package notify

import (
	"context"
	"log"
)

// Notifier sends outbound chat messages and emails. Implementations are
// best-effort: the core logs returned errors but never acts on them.
type Notifier interface {
	SendChatMessage(ctx context.Context, to, body string) error
	SendEmail(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// Async decorates a Notifier so every send is submitted on its own
// goroutine and forgotten. This is the boundary that keeps notification
// delivery out of the core's transaction path: callers return immediately
// and delivery failures surface only in the log.
type Async struct {
	inner Notifier
}

// NewAsync wraps a Notifier with submit-and-forget dispatch.
func NewAsync(inner Notifier) *Async {
	return &Async{inner: inner}
}

var _ Notifier = (*Async)(nil)

func (a *Async) SendChatMessage(ctx context.Context, to, body string) error {
	go func() {
		if err := a.inner.SendChatMessage(context.WithoutCancel(ctx), to, body); err != nil {
			log.Printf("Async chat message to %s failed: %v", to, err)
		}
	}()
	return nil
}

func (a *Async) SendEmail(ctx context.Context, to, subject, htmlBody, textBody string) error {
	go func() {
		if err := a.inner.SendEmail(context.WithoutCancel(ctx), to, subject, htmlBody, textBody); err != nil {
			log.Printf("Async email to %s failed: %v", to, err)
		}
	}()
	return nil
}
