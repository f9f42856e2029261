package notifier

import (
	"context"
	"fmt"
	"testing"

	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/events"
)

type sentMail struct {
	to, subject, body string
}

type recorderSender struct {
	err  error
	sent []sentMail
}

func (s *recorderSender) Send(ctx context.Context, to, subject, body string) error {
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: body})
	return s.err
}

func createdEvent() events.UserEvent {
	return events.UserEvent{
		EventType: events.UserCreated,
		UserID:    1,
		UserEmail: "alice@example.com",
		UserName:  "Alice",
	}
}

func TestWelcomeNotificationOnUserCreated(t *testing.T) {
	sender := &recorderSender{}
	router := NewRouter(sender)

	if err := router.HandleUserEvent(context.Background(), createdEvent()); err != nil {
		t.Fatalf("HandleUserEvent: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(sender.sent))
	}
	mail := sender.sent[0]
	if mail.to != "alice@example.com" {
		t.Errorf("expected recipient alice@example.com, got %q", mail.to)
	}
	if mail.subject != "Добро пожаловать!" {
		t.Errorf("unexpected subject: %q", mail.subject)
	}
	if mail.body != "Здравствуйте, Alice! Ваш аккаунт был создан." {
		t.Errorf("unexpected body: %q", mail.body)
	}
}

func TestAccountRemovedNotificationOnUserDeleted(t *testing.T) {
	sender := &recorderSender{}
	router := NewRouter(sender)

	event := events.UserEvent{
		EventType: events.UserDeleted,
		UserID:    2,
		UserEmail: "bob@example.com",
		UserName:  "Bob",
	}
	if err := router.HandleUserEvent(context.Background(), event); err != nil {
		t.Fatalf("HandleUserEvent: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(sender.sent))
	}
	mail := sender.sent[0]
	if mail.subject != "Аккаунт удален" {
		t.Errorf("unexpected subject: %q", mail.subject)
	}
	if mail.body != "Здравствуйте, Bob! Ваш аккаунт был удален." {
		t.Errorf("unexpected body: %q", mail.body)
	}
}

func TestUnknownEventTypeIgnored(t *testing.T) {
	sender := &recorderSender{}
	router := NewRouter(sender)

	event := events.UserEvent{
		EventType: "USER_SUSPENDED",
		UserEmail: "carol@example.com",
		UserName:  "Carol",
	}
	if err := router.HandleUserEvent(context.Background(), event); err != nil {
		t.Fatalf("unknown types must be ignored, not rejected: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected no dispatch for unknown type, got %d", len(sender.sent))
	}
}

func TestSendFailureIsSwallowed(t *testing.T) {
	sender := &recorderSender{err: fmt.Errorf("mail transport down")}
	router := NewRouter(sender)

	// The event still counts as processed so the message gets acked and no
	// redelivery storm starts.
	if err := router.HandleUserEvent(context.Background(), createdEvent()); err != nil {
		t.Fatalf("send failure must be swallowed, got %v", err)
	}
}

func TestDuplicateDeliveryDispatchesTwice(t *testing.T) {
	// At-least-once delivery means the router may see the same event again.
	// The expected behavior is two dispatch attempts: duplicates are an
	// accepted cost, not deduplicated.
	sender := &recorderSender{}
	router := NewRouter(sender)

	event := createdEvent()
	for i := 0; i < 2; i++ {
		if err := router.HandleUserEvent(context.Background(), event); err != nil {
			t.Fatalf("HandleUserEvent: %v", err)
		}
	}

	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 dispatch attempts for a duplicate delivery, got %d", len(sender.sent))
	}
	if sender.sent[0] != sender.sent[1] {
		t.Errorf("both dispatches should be identical: %+v vs %+v", sender.sent[0], sender.sent[1])
	}
}
