// Package mail wraps the transactional email provider behind a small
// Sender interface so services stay testable and provider failures stay
// recoverable at the call site.
package mail

import (
	"context"
	"errors"
)

// ErrSendFailed wraps any provider-level send failure.
var ErrSendFailed = errors.New("mail: failed to send email")

// Message represents one outbound transactional email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
	Tag     string
}

// Sender sends transactional email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
