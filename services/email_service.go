package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/knowgrow/agency-backend/config"
	"github.com/knowgrow/agency-backend/logger"
	"github.com/knowgrow/agency-backend/types"
	"github.com/prometheus/client_golang/prometheus"
)

// SubjectPrefix starts the subject line of every inquiry email.
const SubjectPrefix = "New Project Inquiry: "

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService turns inquiries into provider messages addressed to the
// studio inbox and sends them through a Mailer.
type EmailService struct {
	config  *config.EmailConfig
	mailer  types.Mailer
	tmpl    *template.Template
	metrics *EmailMetrics
}

func NewEmailService(cfg *config.EmailConfig, mailer types.Mailer) *EmailService {
	return NewEmailServiceWithRegistry(cfg, mailer, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, mailer types.Mailer, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"provider", mailer.Name(),
		"from", cfg.FromAddress,
		"to", logger.MaskEmail(cfg.ToAddress),
		"send_timeout_seconds", cfg.SendTimeoutSeconds)

	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "agency_email_send_duration_seconds",
			Help:    "Time taken to send inquiry emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agency_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agency_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		mailer:  mailer,
		tmpl:    template.Must(template.New("inquiry").Parse(inquiryEmailTemplate)),
		metrics: metrics,
	}
}

// Subject returns the subject line for an inquiry of the given project type.
func Subject(projectType string) string {
	return SubjectPrefix + projectType
}

// RenderInquiryHTML renders the HTML body for inquiry.
func (s *EmailService) RenderInquiryHTML(inquiry types.ContactInquiry) (string, error) {
	var body bytes.Buffer
	err := s.tmpl.Execute(&body, map[string]string{
		"ProjectType": inquiry.ProjectType,
		"Email":       inquiry.Email,
		"Details":     inquiry.DetailsOrPlaceholder(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return body.String(), nil
}

// SendInquiryEmail sends one email for inquiry. reference is attached to the
// message for tracing and is usually the request id.
func (s *EmailService) SendInquiryEmail(ctx context.Context, inquiry types.ContactInquiry, reference string) (*types.SendResult, error) {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	html, err := s.RenderInquiryHTML(inquiry)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to render inquiry email", "error", err)
		return nil, err
	}

	msg := types.EmailMessage{
		From:      fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:        []string{s.config.ToAddress},
		ReplyTo:   inquiry.Email,
		Subject:   Subject(inquiry.ProjectType),
		HTML:      html,
		Text:      renderInquiryText(inquiry),
		Reference: reference,
	}

	if s.config.SendTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.config.SendTimeoutSeconds)*time.Second)
		defer cancel()
	}

	result, err := s.mailer.Send(ctx, msg)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"provider", s.mailer.Name(),
			"subject", msg.Subject,
			"reference", reference)
		return nil, err
	}

	s.metrics.sentCount.Inc()
	log.Infow("Email sent successfully",
		"provider", s.mailer.Name(),
		"id", result.ID,
		"subject", msg.Subject,
		"reply_to", logger.MaskEmail(inquiry.Email))

	return result, nil
}

func renderInquiryText(inquiry types.ContactInquiry) string {
	return fmt.Sprintf("New Project Inquiry\n\nType: %s\nEmail: %s\n\nDetails:\n%s\n",
		inquiry.ProjectType, inquiry.Email, inquiry.DetailsOrPlaceholder())
}

const inquiryEmailTemplate = `
<h1>New Project Inquiry</h1>
<p><strong>Type:</strong> {{.ProjectType}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Details:</strong></p>
<p>{{.Details}}</p>
`
