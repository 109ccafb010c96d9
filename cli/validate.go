package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydronet/solve"
)

// validationOutput is the wire shape of the validate command's answer.
type validationOutput struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

func validateCmd() *cobra.Command {
	var input string
	var maxSize int

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a network's structure without solving it",
		RunE: func(_ *cobra.Command, _ []string) error {
			net, err := loadNetwork(input)
			if err != nil {
				return err
			}
			slog.Debug("network loaded",
				"file", input, "nodes", len(net.Nodes), "segments", len(net.Segments))

			report, err := solve.Validate(net, solve.WithMaxNetworkSize(maxSize))
			if err != nil {
				return err
			}

			out := validationOutput{
				IsValid: report.OK(),
				Errors:  report.Messages(),
			}
			if out.Errors == nil {
				out.Errors = []string{}
			}
			if err = printJSON(out); err != nil {
				return err
			}
			if !out.IsValid {
				return fmt.Errorf("network validation failed: %d violation(s)", len(out.Errors))
			}

			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Network file, JSON or YAML (required)")
	c.Flags().IntVar(&maxSize, "max-size", solve.DefaultMaxNetworkSize, "Maximum node/segment count")

	_ = c.MarkFlagRequired("input")

	return c
}
