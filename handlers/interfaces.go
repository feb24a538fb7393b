package handlers

import (
	"context"

	"github.com/knowgrow/agency-backend/services"
	"github.com/knowgrow/agency-backend/types"
)

// ContactSubmitter defines the contact service methods needed by handlers
type ContactSubmitter interface {
	Submit(ctx context.Context, inquiry types.ContactInquiry, opts services.SubmitOptions) (*types.SendResult, error)
}

// HealthChecker defines the health service methods needed by handlers
type HealthChecker interface {
	CheckHealth(ctx context.Context) types.HealthCheck
}
