package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectTypeLabel(t *testing.T) {
	assert.Equal(t, "Website", ProjectTypeWebsite.Label())
	assert.Equal(t, "UI / UX Design", ProjectTypeDesign.Label())
	assert.Equal(t, "Not sure yet", ProjectTypeUnsure.Label())
	assert.Equal(t, "mobile", ProjectType("mobile").Label())
}

func TestProjectTypeIsKnown(t *testing.T) {
	for _, opt := range ProjectTypes {
		assert.True(t, opt.ID.IsKnown(), opt.ID)
	}
	assert.False(t, ProjectType("mobile").IsKnown())
}

func TestContactInquiryNormalize(t *testing.T) {
	inquiry := ContactInquiry{Email: "  a@b.com ", ProjectType: " website", Details: "\n"}
	inquiry.Normalize()

	assert.Equal(t, "a@b.com", inquiry.Email)
	assert.Equal(t, "website", inquiry.ProjectType)
	assert.Equal(t, "", inquiry.Details)
}

func TestDetailsOrPlaceholder(t *testing.T) {
	assert.Equal(t, "No details provided.", ContactInquiry{}.DetailsOrPlaceholder())
	assert.Equal(t, "Need a landing page", ContactInquiry{Details: "Need a landing page"}.DetailsOrPlaceholder())
}

func TestLooksLikeEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last@studio.example.org", "x+y@d.io"}
	invalid := []string{"", "a@b", "@b.com", "a b@c.com", "a@b c.com", "a@@b.com", "plain"}

	for _, s := range valid {
		assert.True(t, LooksLikeEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, LooksLikeEmail(s), s)
	}
}
