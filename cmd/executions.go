package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newExecutionsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "executions",
		Short: "List trail executions started by your wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExecutionsList(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runExecutionsList(cmd *cobra.Command, app *app, asJSON bool) error {
	svcs, err := app.wireServices(cmd.Context(), cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}
	defer svcs.Close()

	executions, err := svcs.client.ListExecutions(cmd.Context(), svcs.wallet.Address())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(executions)
	}

	if len(executions) == 0 {
		_, err := fmt.Fprintln(out, "No executions found for this wallet.")
		return err
	}

	fmt.Fprintf(out, "executions: %d\n", len(executions))
	for _, execution := range executions {
		completed := 0
		for _, step := range execution.Steps {
			if step.Completed() {
				completed++
			}
		}

		fmt.Fprintf(out, "%s  steps completed: %d  next step: %d  updated: %s\n",
			execution.ID,
			completed,
			execution.NextStepIndex(),
			execution.UpdatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	return nil
}
