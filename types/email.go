package types

import "context"

// Mailer sends a single composed message through a transactional email provider.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) (*SendResult, error)
	Name() string
}

// EmailMessage is a provider-independent message.
type EmailMessage struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
	// Reference is attached as a provider header or variable for tracing.
	Reference string
}
