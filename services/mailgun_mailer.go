package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/knowgrow/agency-backend/config"
	"github.com/knowgrow/agency-backend/logger"
	"github.com/knowgrow/agency-backend/types"
	"github.com/mailgun/mailgun-go/v4"
)

// MailgunMailer sends messages through the Mailgun API.
type MailgunMailer struct {
	client *mailgun.MailgunImpl
}

func NewMailgunMailer(cfg *config.EmailConfig) *MailgunMailer {
	client := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.MailgunBaseURL != "" {
		client.SetAPIBase(cfg.MailgunBaseURL)
	}
	return &MailgunMailer{client: client}
}

func (m *MailgunMailer) Name() string {
	return config.ProviderMailgun
}

func (m *MailgunMailer) Send(ctx context.Context, msg types.EmailMessage) (*types.SendResult, error) {
	message := m.client.NewMessage(msg.From, msg.Subject, msg.Text, msg.To...)
	message.SetHtml(msg.HTML)
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}
	if msg.Reference != "" {
		message.AddHeader("X-Entity-Ref-ID", msg.Reference)
	}

	_, id, err := m.client.Send(ctx, message)
	if err != nil {
		return nil, mailgunError(err)
	}
	return &types.SendResult{ID: id}, nil
}

// mailgunError reduces a client error to the provider's top-level message.
// Mailgun errors embed the request URL and the raw response body, so those
// are logged here and never passed up.
func mailgunError(err error) error {
	log := logger.GetLogger()

	var unexpected *mailgun.UnexpectedResponseError
	if stderrors.As(err, &unexpected) {
		log.Errorw("Mailgun API error response",
			"status", unexpected.Actual,
			"body", string(unexpected.Data))

		var body struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(unexpected.Data, &body); jsonErr == nil && body.Message != "" {
			return fmt.Errorf("mailgun: %s", body.Message)
		}
		return fmt.Errorf("mailgun: %s", http.StatusText(unexpected.Actual))
	}

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		log.Errorw("Mailgun request failed", "error", err)
		return fmt.Errorf("mailgun: %w", urlErr.Err)
	}

	log.Errorw("Mailgun send failed", "error", err)
	return fmt.Errorf("mailgun: %w", err)
}
