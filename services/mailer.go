package services

import (
	"fmt"

	"github.com/knowgrow/agency-backend/config"
	"github.com/knowgrow/agency-backend/types"
)

// NewMailer returns the Mailer for the configured provider.
func NewMailer(cfg *config.EmailConfig) (types.Mailer, error) {
	switch cfg.Provider {
	case config.ProviderResend:
		return NewResendMailer(cfg), nil
	case config.ProviderMailgun:
		return NewMailgunMailer(cfg), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
