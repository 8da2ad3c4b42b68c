package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	quoteadapter "github.com/trailkit/regname/internal/adapters/render/quote"
	"github.com/trailkit/regname/internal/application"
	"github.com/trailkit/regname/internal/domain"
	"github.com/trailkit/regname/internal/ports"
)

func newRegisterCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <name> <years>",
		Short: "Register a name for a number of years",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse years %q: %w", args[1], err)
			}

			req, err := domain.NewRegistrationRequest(args[0], years)
			if err != nil {
				return err
			}

			return runRegister(cmd, app, req)
		},
	}
}

func runRegister(cmd *cobra.Command, app *app, req domain.RegistrationRequest) error {
	confirmer := &promptConfirmer{
		input:  cmd.InOrStdin(),
		output: cmd.OutOrStdout(),
	}

	svcs, err := app.wireServices(cmd.Context(), cmd.ErrOrStderr(), confirmer)
	if err != nil {
		return err
	}
	defer svcs.Close()

	outcome, err := svcs.service.Register(cmd.Context(), req)
	if err != nil {
		var reportErr *application.ReportError
		if errors.As(err, &reportErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Transaction %s was broadcast but could not be reported; keep the hash for manual reconciliation.\n", reportErr.TxHash)
		}
		return err
	}

	out := cmd.OutOrStdout()
	switch outcome.State {
	case application.StateDone:
		fmt.Fprintf(out, "Registered %s for %s.\n", req.Name, yearsPhrase(req.Years))
		fmt.Fprintf(out, "Transaction: %s\n", outcome.TxHash)
		fmt.Fprintf(out, "Execution: %s\n", outcome.Ref.String())
	case application.StateAlreadyRegistered:
		fmt.Fprintf(out, "%s is already registered (expires %s).\n", req.Name, outcome.Expiry.Time().Format("2006-01-02"))
	case application.StateCancelled:
		fmt.Fprintln(out, "Registration cancelled.")
	default:
		return fmt.Errorf("registration stopped in unexpected state %q", outcome.State)
	}

	return nil
}

// promptConfirmer shows the quote and reads a yes/no answer from the
// terminal. Anything but an explicit yes declines.
type promptConfirmer struct {
	input  io.Reader
	output io.Writer
}

var _ ports.Confirmer = (*promptConfirmer)(nil)

func (p *promptConfirmer) ConfirmRegistration(_ context.Context, req domain.RegistrationRequest, quote domain.PriceQuote) (bool, error) {
	fmt.Fprintf(p.output, "Name:    %s\n", req.Name)
	fmt.Fprintf(p.output, "Period:  %s\n", yearsPhrase(req.Years))
	fmt.Fprintf(p.output, "Base:    %s\n", quoteadapter.FormatEther(quote.Base))
	fmt.Fprintf(p.output, "Premium: %s\n", quoteadapter.FormatEther(quote.Premium))
	fmt.Fprintf(p.output, "Total:   %s\n", quoteadapter.FormatEther(quote.Total()))
	fmt.Fprint(p.output, "Proceed with registration? [y/N]: ")

	line, err := bufio.NewReader(p.input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func yearsPhrase(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
