package mailer

import (
	"context"
	"log"
)

// LogSender writes outgoing mail to the process log instead of sending it.
// It stands in for the real transport in development, where no Postmark
// credentials are configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, to, subject, body string) error {
	log.Printf("[Mailer] to=%s subject=%q body=%q", to, subject, body)
	return nil
}
