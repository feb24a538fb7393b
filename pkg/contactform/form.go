package contactform

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/knowgrow/agency-backend/types"
)

// Step is a position in the form.
type Step int

const (
	StepProjectType Step = iota
	StepEmail
	StepDetails
)

func (s Step) String() string {
	switch s {
	case StepProjectType:
		return "project type"
	case StepEmail:
		return "email"
	case StepDetails:
		return "details"
	default:
		return "unknown"
	}
}

var (
	ErrWrongStep    = errors.New("action not available at this step")
	ErrInvalidEmail = errors.New("email does not look like local@domain.tld")
	ErrEmptyType    = errors.New("project type is required")
)

// Form holds one visitor's progress through the inquiry steps.
// It is safe for concurrent use.
type Form struct {
	mu          sync.Mutex
	submitter   Submitter
	step        Step
	projectType types.ProjectType
	email       string
	details     string
	submitting  bool
	succeeded   bool
}

func NewForm(submitter Submitter) *Form {
	return &Form{submitter: submitter}
}

func (f *Form) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// SelectProjectType records the choice and moves on to the email step.
func (f *Form) SelectProjectType(id types.ProjectType) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepProjectType || f.succeeded {
		return ErrWrongStep
	}
	if strings.TrimSpace(string(id)) == "" {
		return ErrEmptyType
	}
	f.projectType = id
	f.step = StepEmail
	return nil
}

func (f *Form) ProjectType() types.ProjectType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.projectType
}

func (f *Form) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = email
}

func (f *Form) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// CanContinue reports whether the email step may be left forward.
func (f *Form) CanContinue() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step == StepEmail && types.LooksLikeEmail(f.email)
}

func (f *Form) Continue() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepEmail {
		return ErrWrongStep
	}
	if !types.LooksLikeEmail(f.email) {
		return ErrInvalidEmail
	}
	f.step = StepDetails
	return nil
}

// Back moves one step towards the start. It is a no-op on the first step.
func (f *Form) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.succeeded || f.step == StepProjectType {
		return
	}
	f.step--
}

func (f *Form) SetDetails(details string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details = details
}

func (f *Form) Details() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.details
}

// Inquiry returns the payload the form would submit.
func (f *Form) Inquiry() types.ContactInquiry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inquiryLocked()
}

func (f *Form) inquiryLocked() types.ContactInquiry {
	return types.ContactInquiry{
		Email:       f.email,
		ProjectType: string(f.projectType),
		Details:     f.details,
	}
}

// Submit sends the inquiry. On failure the form stays on the details step so
// the visitor can retry. A second call while one is in flight is not refused.
func (f *Form) Submit(ctx context.Context) (*types.SendResult, error) {
	f.mu.Lock()
	if f.step != StepDetails || f.succeeded {
		f.mu.Unlock()
		return nil, ErrWrongStep
	}
	inquiry := f.inquiryLocked()
	f.submitting = true
	f.mu.Unlock()

	result, err := f.submitter.Submit(ctx, inquiry)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		return nil, err
	}
	f.succeeded = true
	return result, nil
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form) Succeeded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.succeeded
}

// ConfirmationLabel names the selected project type on the success screen.
func (f *Form) ConfirmationLabel() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.projectType.Label()
}

// Reset clears every field and returns to the first step.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.step = StepProjectType
	f.projectType = ""
	f.email = ""
	f.details = ""
	f.submitting = false
	f.succeeded = false
}
