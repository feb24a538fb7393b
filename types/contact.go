package types

import "strings"

// DetailsPlaceholder is written into the email body when an inquiry has no details.
const DetailsPlaceholder = "No details provided."

// ProjectType identifies the kind of work a prospective client is asking about.
type ProjectType string

const (
	ProjectTypeWebsite ProjectType = "website"
	ProjectTypeWebApp  ProjectType = "webapp"
	ProjectTypeAI      ProjectType = "ai"
	ProjectTypeDesign  ProjectType = "design"
	ProjectTypeUnsure  ProjectType = "unsure"
)

// ProjectTypeOption pairs a project type with the label shown to visitors.
type ProjectTypeOption struct {
	ID    ProjectType `json:"id"`
	Label string      `json:"label"`
}

// ProjectTypes lists the options offered by the contact form, in display order.
var ProjectTypes = []ProjectTypeOption{
	{ID: ProjectTypeWebsite, Label: "Website"},
	{ID: ProjectTypeWebApp, Label: "Web App"},
	{ID: ProjectTypeAI, Label: "AI Solution"},
	{ID: ProjectTypeDesign, Label: "UI / UX Design"},
	{ID: ProjectTypeUnsure, Label: "Not sure yet"},
}

// Label returns the display label for p, or the raw id for unknown types.
func (p ProjectType) Label() string {
	for _, opt := range ProjectTypes {
		if opt.ID == p {
			return opt.Label
		}
	}
	return string(p)
}

// IsKnown reports whether p is one of the options offered by the form.
// The intake endpoint does not require this.
func (p ProjectType) IsKnown() bool {
	for _, opt := range ProjectTypes {
		if opt.ID == p {
			return true
		}
	}
	return false
}

// ContactInquiry is the payload a prospective client submits.
// @Description Contact form submission
type ContactInquiry struct {
	Email       string `json:"email" validate:"required,emailshape" example:"a@b.com"`
	ProjectType string `json:"projectType" validate:"required" example:"website"`
	Details     string `json:"details,omitempty" example:"Need a landing page"`
}

// Normalize trims surrounding whitespace from every field.
func (i *ContactInquiry) Normalize() {
	i.Email = strings.TrimSpace(i.Email)
	i.ProjectType = strings.TrimSpace(i.ProjectType)
	i.Details = strings.TrimSpace(i.Details)
}

// DetailsOrPlaceholder returns Details, or DetailsPlaceholder when empty.
func (i ContactInquiry) DetailsOrPlaceholder() string {
	if i.Details == "" {
		return DetailsPlaceholder
	}
	return i.Details
}

// SendResult is the provider's answer to a send request.
// @Description Provider send result
type SendResult struct {
	ID string `json:"id" example:"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"`
}

// ContactSuccessResponse is returned when the inquiry email was accepted.
// @Description Successful submission
type ContactSuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    *SendResult `json:"data"`
}

// ContactErrorResponse is the error envelope of the intake endpoint.
// @Description Failed submission
type ContactErrorResponse struct {
	Error   string `json:"error" example:"Failed to send message"`
	Details string `json:"details,omitempty" example:"[ERROR]: API key is invalid"`
}
