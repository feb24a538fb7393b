package cli

import (
	"errors"
	"fmt"

	"github.com/knowgrow/agency-backend/pkg/contactform"
	"github.com/knowgrow/agency-backend/types"
	"github.com/spf13/cobra"
)

func newSubmitCommand(opts *options) *cobra.Command {
	var (
		projectType string
		email       string
		details     string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a single inquiry",
		Example: `  inquiry submit --type website --email jane@example.com
  inquiry submit --type ai --email jane@example.com --details "Support chatbot"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inquiry := types.ContactInquiry{
				Email:       email,
				ProjectType: projectType,
				Details:     details,
			}

			result, err := opts.submitter().Submit(cmd.Context(), inquiry)
			if err != nil {
				return describeSubmitError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inquiry sent (id %s)\n", result.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectType, "type", "", "project type (website, webapp, ai, design, unsure)")
	cmd.Flags().StringVar(&email, "email", "", "reply-to email address")
	cmd.Flags().StringVar(&details, "details", "", "optional project details")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the project types offered by the form",
		Run: func(cmd *cobra.Command, args []string) {
			for _, opt := range types.ProjectTypes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", opt.ID, opt.Label)
			}
		},
	}
}

func describeSubmitError(err error) error {
	var submitErr *contactform.SubmitError
	if errors.As(err, &submitErr) && submitErr.Details != "" {
		return fmt.Errorf("%s: %s", submitErr.Message, submitErr.Details)
	}
	if errors.As(err, &submitErr) {
		return errors.New(submitErr.Message)
	}
	return err
}
