// Package cli implements the inquiry command line client.
package cli

import (
	"time"

	"github.com/knowgrow/agency-backend/pkg/contactform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultServer  = "http://localhost:8080"
	defaultTimeout = 30 * time.Second
)

// options are shared by all subcommands.
type options struct {
	v *viper.Viper
	// newSubmitter is swapped out in tests.
	newSubmitter func(server string, timeout time.Duration) contactform.Submitter
}

func (o *options) submitter() contactform.Submitter {
	return o.newSubmitter(o.v.GetString("server"), o.v.GetDuration("timeout"))
}

// NewRootCommand builds the inquiry command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(func(server string, timeout time.Duration) contactform.Submitter {
		return contactform.NewClient(server, timeout)
	})
}

func newRootCommand(newSubmitter func(string, time.Duration) contactform.Submitter) *cobra.Command {
	opts := &options{v: viper.New(), newSubmitter: newSubmitter}

	rootCmd := &cobra.Command{
		Use:   "inquiry",
		Short: "Send project inquiries to the agency contact endpoint",
		Long: `Command-line client for the agency contact endpoint.

Use "submit" for a one-shot inquiry or "wizard" to walk through the same
three steps as the website form.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("server", defaultServer, "contact API base URL")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "request timeout (0 for none)")

	_ = opts.v.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = opts.v.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	opts.v.SetEnvPrefix("INQUIRY")
	opts.v.AutomaticEnv()

	rootCmd.AddCommand(newSubmitCommand(opts))
	rootCmd.AddCommand(newWizardCommand(opts))
	rootCmd.AddCommand(newTypesCommand())

	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}
