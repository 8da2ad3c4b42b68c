package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "regname",
		Short:         "regname: register names on-chain through a trails workflow",
		Long:          "regname checks name price and availability, resolves the execution to continue, fetches the registration calldata, signs and broadcasts it with your wallet, and reports the transaction back to the trails service.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newRegisterCmd(app),
		newStatusCmd(app),
		newExecutionsCmd(app),
	)

	return rootCmd
}
