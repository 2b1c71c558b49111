package sms

import (
	"context"
	"io"
)

// Message represents an SMS payload.
type Message struct {
	// To is the recipient MSISDN in international format without a plus sign.
	To string
	// Text is the message body.
	Text string
	// Sender is an optional explicit sender name; fallback depends on implementation.
	Sender string
}

// SMS abstracts an SMS provider.
type SMS interface {
	io.Closer
	// Send dispatches the given message using the underlying provider.
	Send(ctx context.Context, msg Message) error
}
