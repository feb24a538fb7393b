package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/knowgrow/agency-backend/pkg/contactform"
	"github.com/knowgrow/agency-backend/types"
	"github.com/spf13/cobra"
)

func newWizardCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Walk through the inquiry form interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &wizard{
				form: contactform.NewForm(opts.submitter()),
				in:   bufio.NewReader(cmd.InOrStdin()),
				out:  cmd.OutOrStdout(),
			}
			return w.run(cmd)
		},
	}
}

type wizard struct {
	form *contactform.Form
	in   *bufio.Reader
	out  io.Writer
}

// readLine returns the next trimmed line. io.EOF is returned only when no
// more input is available.
func (w *wizard) readLine(prompt string) (string, error) {
	fmt.Fprint(w.out, prompt)
	line, err := w.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (w *wizard) run(cmd *cobra.Command) error {
	for {
		var err error
		switch w.form.Step() {
		case contactform.StepProjectType:
			err = w.askProjectType()
		case contactform.StepEmail:
			err = w.askEmail()
		case contactform.StepDetails:
			var done bool
			done, err = w.askDetails(cmd)
			if err == nil && done {
				again, askErr := w.readLine("Start another request? [y/N] ")
				if askErr != nil || !strings.EqualFold(again, "y") {
					return nil
				}
				w.form.Reset()
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (w *wizard) askProjectType() error {
	fmt.Fprintln(w.out, "What are you looking to build?")
	for i, opt := range types.ProjectTypes {
		fmt.Fprintf(w.out, "  %d) %s\n", i+1, opt.Label)
	}

	answer, err := w.readLine("> ")
	if err != nil {
		return err
	}

	n, convErr := strconv.Atoi(answer)
	if convErr != nil || n < 1 || n > len(types.ProjectTypes) {
		fmt.Fprintln(w.out, "Please pick one of the listed options.")
		return nil
	}
	return w.form.SelectProjectType(types.ProjectTypes[n-1].ID)
}

func (w *wizard) askEmail() error {
	answer, err := w.readLine("Your email (blank to go back): ")
	if err != nil {
		return err
	}
	if answer == "" {
		w.form.Back()
		return nil
	}

	w.form.SetEmail(answer)
	if !w.form.CanContinue() {
		fmt.Fprintln(w.out, "That does not look like an email address.")
		return nil
	}
	return w.form.Continue()
}

// askDetails collects the optional details and submits. It reports true once
// the inquiry was sent.
func (w *wizard) askDetails(cmd *cobra.Command) (bool, error) {
	answer, err := w.readLine("Tell us about the project (optional): ")
	if err != nil {
		return false, err
	}
	w.form.SetDetails(answer)

	fmt.Fprintln(w.out, "Sending...")
	if _, err := w.form.Submit(cmd.Context()); err != nil {
		fmt.Fprintf(w.out, "Something went wrong: %v\n", describeSubmitError(err))
		retry, readErr := w.readLine("Try again? [Y/n] ")
		if readErr != nil || strings.EqualFold(retry, "n") {
			return false, describeSubmitError(err)
		}
		return false, nil
	}

	fmt.Fprintf(w.out, "Thanks! We received your %s inquiry and will reply by email.\n", w.form.ConfirmationLabel())
	return true, nil
}
