// Package mailer is the external send capability behind notifications.
package mailer

import (
	"context"
	"errors"
)

// ErrSendFailed wraps any transport-level failure to deliver an email.
var ErrSendFailed = errors.New("failed to send email")

// Sender sends a single email. Implementations do not retry; a failed send is
// terminal for the caller to log and move on.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
