package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/knowgrow/agency-backend/pkg/contactform"
	"github.com/knowgrow/agency-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(ctx context.Context, inquiry types.ContactInquiry) (*types.SendResult, error) {
	args := m.Called(ctx, inquiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SendResult), args.Error(1)
}

func runCommand(t *testing.T, sub *mockSubmitter, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var gotServer string
	root := newRootCommand(func(server string, timeout time.Duration) contactform.Submitter {
		gotServer = server
		return sub
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), gotServer, err
}

func TestSubmitCommand(t *testing.T) {
	t.Run("sends inquiry", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Submit", mock.Anything, types.ContactInquiry{
			Email:       "a@b.com",
			ProjectType: "website",
			Details:     "Landing page",
		}).Return(&types.SendResult{ID: "re_1"}, nil)

		out, server, err := runCommand(t, sub, "",
			"submit", "--type", "website", "--email", "a@b.com", "--details", "Landing page",
			"--server", "https://api.example.com")

		require.NoError(t, err)
		assert.Contains(t, out, "Inquiry sent (id re_1)")
		assert.Equal(t, "https://api.example.com", server)
	})

	t.Run("server error is reported", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Submit", mock.Anything, mock.Anything).Return(nil, &contactform.SubmitError{
			StatusCode: 500,
			Message:    "Failed to send message",
			Details:    "API key is invalid",
		})

		_, _, err := runCommand(t, sub, "", "submit", "--type", "ai", "--email", "a@b.com")

		require.Error(t, err)
		assert.Equal(t, "Failed to send message: API key is invalid", err.Error())
	})

	t.Run("required flags", func(t *testing.T) {
		sub := &mockSubmitter{}

		_, _, err := runCommand(t, sub, "", "submit", "--type", "ai")

		assert.Error(t, err)
		sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}

func TestTypesCommand(t *testing.T) {
	out, _, err := runCommand(t, &mockSubmitter{}, "", "types")

	require.NoError(t, err)
	assert.Contains(t, out, "website")
	assert.Contains(t, out, "AI Solution")
}

func TestWizardCommand(t *testing.T) {
	t.Run("walks the three steps", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Submit", mock.Anything, types.ContactInquiry{
			Email:       "a@b.com",
			ProjectType: "ai",
			Details:     "Chatbot",
		}).Return(&types.SendResult{ID: "re_1"}, nil).Once()

		// 9 is out of range, "bad" fails the email check.
		stdin := "9\n3\nbad\na@b.com\nChatbot\nn\n"
		out, _, err := runCommand(t, sub, stdin, "wizard")

		require.NoError(t, err)
		assert.Contains(t, out, "Please pick one of the listed options.")
		assert.Contains(t, out, "That does not look like an email address.")
		assert.Contains(t, out, "We received your AI Solution inquiry")
		sub.AssertExpectations(t)
	})

	t.Run("back from email step", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Submit", mock.Anything, types.ContactInquiry{
			Email:       "a@b.com",
			ProjectType: "design",
		}).Return(&types.SendResult{ID: "re_2"}, nil).Once()

		stdin := "1\n\n4\na@b.com\n\n"
		_, _, err := runCommand(t, sub, stdin, "wizard")

		require.NoError(t, err)
		sub.AssertExpectations(t)
	})

	t.Run("failure then retry", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Submit", mock.Anything, mock.Anything).
			Return(nil, &contactform.SubmitError{StatusCode: 500, Message: "Failed to send message"}).Once()
		sub.On("Submit", mock.Anything, mock.Anything).
			Return(&types.SendResult{ID: "re_3"}, nil).Once()

		stdin := "1\na@b.com\nSite\ny\nSite\nn\n"
		out, _, err := runCommand(t, sub, stdin, "wizard")

		require.NoError(t, err)
		assert.Contains(t, out, "Something went wrong: Failed to send message")
		assert.Contains(t, out, "We received your Website inquiry")
		sub.AssertNumberOfCalls(t, "Submit", 2)
	})

	t.Run("failure then give up", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Submit", mock.Anything, mock.Anything).
			Return(nil, &contactform.SubmitError{StatusCode: 500, Message: "Failed to send message"})

		stdin := "1\na@b.com\n\nn\n"
		_, _, err := runCommand(t, sub, stdin, "wizard")

		assert.EqualError(t, err, "Failed to send message")
	})
}
