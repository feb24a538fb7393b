package services

import (
	"context"
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/knowgrow/agency-backend/errors"
	"github.com/knowgrow/agency-backend/logger"
	"github.com/knowgrow/agency-backend/types"
	"github.com/prometheus/client_golang/prometheus"
)

// Inquiry outcomes recorded by the agency_contact_inquiries_total counter.
const (
	OutcomeSent      = "sent"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

// InquiryValidator checks required fields and, optionally, the email shape.
type InquiryValidator struct {
	validate *validator.Validate
}

func NewInquiryValidator(checkEmailFormat bool) *InquiryValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		if !checkEmailFormat {
			return true
		}
		return types.LooksLikeEmail(fl.Field().String())
	})
	return &InquiryValidator{validate: v}
}

// Validate returns a VALIDATION_ERROR AppError, or nil when inquiry is acceptable.
func (v *InquiryValidator) Validate(inquiry *types.ContactInquiry) *apperrors.AppError {
	err := v.validate.Struct(inquiry)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return apperrors.ValidationFailed(apperrors.MsgMissingFields, err.Error())
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return apperrors.MissingRequiredFields(missing...)
	}
	return apperrors.InvalidEmail()
}

// SubmitOptions carries per-request data that is not part of the inquiry.
type SubmitOptions struct {
	// IdempotencyKey is optional; it is only honoured when deduplication is enabled.
	IdempotencyKey string
	RequestID      string
}

// ContactService validates inquiries and relays them as emails.
type ContactService struct {
	validator *InquiryValidator
	email     *EmailService
	dedup     Deduplicator
	outcomes  *prometheus.CounterVec
}

// NewContactService wires the intake flow. dedup may be nil, in which case
// every valid submission is sent.
func NewContactService(validator *InquiryValidator, email *EmailService, dedup Deduplicator, reg prometheus.Registerer) *ContactService {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agency_contact_inquiries_total",
		Help: "Contact inquiries by outcome",
	}, []string{"outcome"})
	reg.MustRegister(outcomes)

	return &ContactService{
		validator: validator,
		email:     email,
		dedup:     dedup,
		outcomes:  outcomes,
	}
}

// Submit validates inquiry and sends exactly one email for it. Errors are
// *apperrors.AppError values ready to be attached to a gin context.
func (s *ContactService) Submit(ctx context.Context, inquiry types.ContactInquiry, opts SubmitOptions) (*types.SendResult, error) {
	log := logger.GetLogger()
	inquiry.Normalize()

	if appErr := s.validator.Validate(&inquiry); appErr != nil {
		s.outcomes.WithLabelValues(OutcomeInvalid).Inc()
		return nil, appErr
	}

	claimed := false
	if s.dedup != nil && opts.IdempotencyKey != "" {
		ok, err := s.dedup.Claim(ctx, opts.IdempotencyKey)
		switch {
		case err != nil:
			log.Warnw("Idempotency check failed, sending anyway",
				"error", err, "request_id", opts.RequestID)
		case !ok:
			s.outcomes.WithLabelValues(OutcomeDuplicate).Inc()
			return nil, apperrors.DuplicateSubmission(opts.IdempotencyKey)
		default:
			claimed = true
		}
	}

	result, err := s.email.SendInquiryEmail(ctx, inquiry, opts.RequestID)
	if err != nil {
		s.outcomes.WithLabelValues(OutcomeFailed).Inc()
		if claimed {
			// Use a fresh context: ctx may be the one that timed out.
			if relErr := s.dedup.Release(context.Background(), opts.IdempotencyKey); relErr != nil {
				log.Warnw("Failed to release idempotency key", "error", relErr, "request_id", opts.RequestID)
			}
		}
		return nil, apperrors.ProviderFailed(err)
	}

	s.outcomes.WithLabelValues(OutcomeSent).Inc()
	log.Infow("Contact inquiry relayed",
		"project_type", inquiry.ProjectType,
		"email", logger.MaskEmail(inquiry.Email),
		"has_details", inquiry.Details != "",
		"request_id", opts.RequestID)

	return result, nil
}
