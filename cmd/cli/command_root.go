package main

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pms",
		Short:         "Process Metrics CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMetricsCmd())
	root.AddCommand(newHealthCmd())

	return root
}
