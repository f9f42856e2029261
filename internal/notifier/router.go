// Package notifier turns delivered user events into email notifications.
package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/events"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/mailer"
)

// Router classifies each delivered event and dispatches the matching
// notification. It keeps no state between events and performs no
// deduplication: a redelivered event is sent again, which is the accepted
// cost of at-least-once delivery.
type Router struct {
	sender mailer.Sender
}

func NewRouter(sender mailer.Sender) *Router {
	return &Router{sender: sender}
}

// HandleUserEvent is the subscriber handler. Unknown event types are ignored
// for forward compatibility. A failed send is logged and swallowed — the
// event still counts as processed, so a mail outage never causes a
// redelivery storm.
func (r *Router) HandleUserEvent(ctx context.Context, event events.UserEvent) error {
	log.Printf("[Notifier] Received user event: type=%s user_id=%d correlation_id=%s",
		event.EventType, event.UserID, event.CorrelationID)

	tmpl, ok := templates[event.EventType]
	if !ok {
		log.Printf("[Notifier] Ignoring unknown event type: %s", event.EventType)
		return nil
	}

	body := fmt.Sprintf(tmpl.body, event.UserName)
	if err := r.sender.Send(ctx, event.UserEmail, tmpl.subject, body); err != nil {
		log.Printf("[Notifier] Failed to send email to %s: %v", event.UserEmail, err)
		return nil
	}

	log.Printf("[Notifier] Email sent to: %s", event.UserEmail)
	return nil
}
