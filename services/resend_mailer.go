package services

import (
	"context"
	"fmt"

	"github.com/knowgrow/agency-backend/config"
	"github.com/knowgrow/agency-backend/types"
	"github.com/resend/resend-go/v2"
)

// resendEmails is the part of resend.EmailsSvc the mailer needs.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendMailer sends messages through the Resend API.
type ResendMailer struct {
	emails resendEmails
}

// NewResendMailer builds a Resend client from cfg. The API key is validated
// by config.LoadConfig before this is called.
func NewResendMailer(cfg *config.EmailConfig) *ResendMailer {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &ResendMailer{emails: client.Emails}
}

func (m *ResendMailer) Name() string {
	return config.ProviderResend
}

func (m *ResendMailer) Send(ctx context.Context, msg types.EmailMessage) (*types.SendResult, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	if msg.Reference != "" {
		params.Headers = map[string]string{"X-Entity-Ref-ID": msg.Reference}
	}

	sent, err := m.emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, err
	}
	if sent == nil {
		return nil, fmt.Errorf("resend returned an empty response")
	}
	return &types.SendResult{ID: sent.Id}, nil
}
