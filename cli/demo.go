package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydronet/network"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the canned example network as JSON",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printJSON(network.Demo())
		},
	}
}

func kfactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kfactors",
		Short: "Print the fitting K-factor reference table as JSON",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Map keys are sorted by the JSON encoder, so the table
			// prints deterministically.
			return printJSON(network.KFactors())
		},
	}
}
