// Package contactform drives the three-step project inquiry form and submits
// the result to the intake endpoint.
package contactform

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/knowgrow/agency-backend/types"
)

// ContactPath is the intake endpoint relative to the server base URL.
const ContactPath = "/api/contact"

// SubmitError is returned when the intake endpoint answers with a non-2xx status.
type SubmitError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *SubmitError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%d): %s", e.Message, e.StatusCode, e.Details)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

// Submitter sends an inquiry and returns the provider's result.
type Submitter interface {
	Submit(ctx context.Context, inquiry types.ContactInquiry) (*types.SendResult, error)
}

// Client posts inquiries to the intake endpoint.
type Client struct {
	http *resty.Client
}

// NewClient returns a Client for the server at baseURL. A zero timeout means
// requests are only bounded by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c}
}

// Submit posts inquiry once. It does not retry.
func (c *Client) Submit(ctx context.Context, inquiry types.ContactInquiry) (*types.SendResult, error) {
	return c.submit(ctx, inquiry, "")
}

// SubmitWithKey is Submit with an Idempotency-Key header, which the server
// honours when duplicate detection is enabled.
func (c *Client) SubmitWithKey(ctx context.Context, inquiry types.ContactInquiry, key string) (*types.SendResult, error) {
	return c.submit(ctx, inquiry, key)
}

func (c *Client) submit(ctx context.Context, inquiry types.ContactInquiry, key string) (*types.SendResult, error) {
	var ok types.ContactSuccessResponse
	var failed types.ContactErrorResponse

	req := c.http.R().
		SetContext(ctx).
		SetBody(inquiry).
		SetResult(&ok).
		SetError(&failed)
	if key != "" {
		req.SetHeader("Idempotency-Key", key)
	}

	resp, err := req.Post(ContactPath)
	if err != nil {
		return nil, fmt.Errorf("contact request failed: %w", err)
	}

	if resp.IsError() || !resp.IsSuccess() {
		msg := failed.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return nil, &SubmitError{
			StatusCode: resp.StatusCode(),
			Message:    msg,
			Details:    failed.Details,
		}
	}

	if !ok.Success || ok.Data == nil {
		return nil, fmt.Errorf("unexpected response from contact endpoint: %s", resp.String())
	}
	return ok.Data, nil
}
