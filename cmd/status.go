package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	quoteadapter "github.com/trailkit/regname/internal/adapters/render/quote"
	"github.com/trailkit/regname/internal/domain"
)

func newStatusCmd(app *app) *cobra.Command {
	var years int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status <name>",
		Short: "Show price and availability for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := domain.NewRegistrationRequest(args[0], years)
			if err != nil {
				return err
			}

			return runStatus(cmd, app, req, asJSON)
		},
	}

	cmd.Flags().IntVar(&years, "years", 1, "Registration period used for the price quote")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type statusOutput struct {
	Name       string `json:"name"`
	Years      int    `json:"years"`
	Registered bool   `json:"registered"`
	ExpiresAt  int64  `json:"expires_at,omitempty"`
	BaseWei    string `json:"base_wei"`
	PremiumWei string `json:"premium_wei"`
	TotalWei   string `json:"total_wei"`
}

func runStatus(cmd *cobra.Command, app *app, req domain.RegistrationRequest, asJSON bool) error {
	svcs, err := app.wireServices(cmd.Context(), cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}
	defer svcs.Close()

	var quote domain.PriceQuote
	var expiry domain.ExpiryInfo

	check := func(ctx context.Context) error {
		quote, expiry, err = svcs.service.CheckAvailability(ctx, req.Name, req.DurationSeconds())
		return err
	}

	if asJSON {
		if err := check(cmd.Context()); err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(statusOutput{
			Name:       req.Name,
			Years:      req.Years,
			Registered: expiry.Registered(),
			ExpiresAt:  expiry.ExpiresAt,
			BaseWei:    quote.Base.String(),
			PremiumWei: quote.Premium.String(),
			TotalWei:   quote.Total().String(),
		})
	}

	if err := runStatusCheckSpinner(cmd.Context(), cmd.ErrOrStderr(), check); err != nil {
		return err
	}

	rendered, err := app.quoteRenderer(quoteadapter.Summary{
		Name:   req.Name,
		Years:  req.Years,
		Quote:  quote,
		Expiry: expiry,
	}, quoteadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
