package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/knowgrow/agency-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService(t *testing.T) {
	cfg := testEmailConfig()
	mailer := &mockMailer{}

	service := NewEmailServiceWithRegistry(cfg, mailer, &mockRegistry{})

	assert.NotNil(t, service)
	assert.Equal(t, cfg, service.config)
	assert.Equal(t, mailer, service.mailer)
	assert.NotNil(t, service.metrics)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "New Project Inquiry: website", Subject("website"))
	assert.Equal(t, "New Project Inquiry: custom thing", Subject("custom thing"))
}

func TestRenderInquiryHTML(t *testing.T) {
	service := NewEmailServiceWithRegistry(testEmailConfig(), &mockMailer{}, &mockRegistry{})

	t.Run("includes details", func(t *testing.T) {
		html, err := service.RenderInquiryHTML(types.ContactInquiry{
			Email:       "a@b.com",
			ProjectType: "website",
			Details:     "Need a landing page",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "<h1>New Project Inquiry</h1>")
		assert.Contains(t, html, "website")
		assert.Contains(t, html, "a@b.com")
		assert.Contains(t, html, "Need a landing page")
		assert.NotContains(t, html, types.DetailsPlaceholder)
	})

	t.Run("placeholder when details are empty", func(t *testing.T) {
		html, err := service.RenderInquiryHTML(types.ContactInquiry{
			Email:       "a@b.com",
			ProjectType: "ai",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "No details provided.")
	})

	t.Run("html body escapes details markup", func(t *testing.T) {
		html, err := service.RenderInquiryHTML(types.ContactInquiry{
			Email:       "a@b.com",
			ProjectType: "website",
			Details:     "<script>alert(1)</script> Budget < 5k & fast",
		})
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "Budget &lt; 5k &amp; fast")
	})
}

func TestSendInquiryEmailTextCarriesLiteralDetails(t *testing.T) {
	details := "Budget < 5k & fast"
	mailer := &mockMailer{}
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg types.EmailMessage) bool {
		return strings.Contains(msg.Text, details) &&
			strings.Contains(msg.Text, "website") &&
			strings.Contains(msg.Text, "a@b.com")
	})).Return(&types.SendResult{ID: "id"}, nil)

	service := NewEmailServiceWithRegistry(testEmailConfig(), mailer, &mockRegistry{})
	_, err := service.SendInquiryEmail(context.Background(),
		types.ContactInquiry{Email: "a@b.com", ProjectType: "website", Details: details}, "")

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestSendInquiryEmail(t *testing.T) {
	inquiry := types.ContactInquiry{
		Email:       "a@b.com",
		ProjectType: "website",
		Details:     "Need a landing page",
	}

	tests := []struct {
		name        string
		setupMock   func(*mockMailer)
		expectError bool
	}{
		{
			name: "successful email send",
			setupMock: func(m *mockMailer) {
				m.On("Send", mock.Anything, mock.MatchedBy(func(msg types.EmailMessage) bool {
					return msg.Subject == "New Project Inquiry: website" &&
						msg.From == "Contact Form <onboarding@resend.dev>" &&
						len(msg.To) == 1 && msg.To[0] == "studio@example.com" &&
						msg.ReplyTo == "a@b.com" &&
						msg.Reference == "req-1"
				})).Return(&types.SendResult{ID: "email-id"}, nil)
			},
			expectError: false,
		},
		{
			name: "failed email send",
			setupMock: func(m *mockMailer) {
				m.On("Send", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &mockMailer{}
			tt.setupMock(mailer)

			service := NewEmailServiceWithRegistry(testEmailConfig(), mailer, &mockRegistry{})
			result, err := service.SendInquiryEmail(context.Background(), inquiry, "req-1")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "email-id", result.ID)
			}
			mailer.AssertExpectations(t)
		})
	}
}

func TestSendInquiryEmailTimeout(t *testing.T) {
	cfg := testEmailConfig()
	cfg.SendTimeoutSeconds = 3

	mailer := &mockMailer{}
	mailer.On("Send", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= 3*time.Second
	}), mock.Anything).Return(&types.SendResult{ID: "id"}, nil)

	service := NewEmailServiceWithRegistry(cfg, mailer, &mockRegistry{})
	_, err := service.SendInquiryEmail(context.Background(), types.ContactInquiry{Email: "a@b.com", ProjectType: "ai"}, "")

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestSendInquiryEmailNoTimeout(t *testing.T) {
	cfg := testEmailConfig()
	cfg.SendTimeoutSeconds = 0

	mailer := &mockMailer{}
	mailer.On("Send", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return !ok
	}), mock.Anything).Return(&types.SendResult{ID: "id"}, nil)

	service := NewEmailServiceWithRegistry(cfg, mailer, &mockRegistry{})
	_, err := service.SendInquiryEmail(context.Background(), types.ContactInquiry{Email: "a@b.com", ProjectType: "ai"}, "")

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestEmailMetrics(t *testing.T) {
	mailer := &mockMailer{}
	service := NewEmailServiceWithRegistry(testEmailConfig(), mailer, &mockRegistry{})
	inquiry := types.ContactInquiry{Email: "a@b.com", ProjectType: "design"}

	mailer.On("Send", mock.Anything, mock.Anything).Return(&types.SendResult{ID: "id"}, nil).Once()
	_, err := service.SendInquiryEmail(context.Background(), inquiry, "")
	require.NoError(t, err)

	assert.Equal(t, float64(1), testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, float64(0), testGetCounterValue(service.metrics.errorCount))

	mailer.On("Send", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	_, err = service.SendInquiryEmail(context.Background(), inquiry, "")
	assert.Error(t, err)

	assert.Equal(t, float64(1), testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, float64(1), testGetCounterValue(service.metrics.errorCount))

	mailer.AssertExpectations(t)
}
