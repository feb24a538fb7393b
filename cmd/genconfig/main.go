// Command genconfig prints a YAML configuration skeleton filled with the
// service defaults. Secrets are left blank.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/knowgrow/agency-backend/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:          "genconfig",
		Short:        "Write a configuration skeleton with default values",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" || output == "-" {
				return render(cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			return render(f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "file to write (- for stdout)")
	return cmd
}

func defaults() (*config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal defaults: %w", err)
	}
	return &cfg, nil
}

func render(w io.Writer) error {
	cfg, err := defaults()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
