package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydronet/export"
	"github.com/katalvlaran/hydronet/solve"
)

func calculateCmd() *cobra.Command {
	var input string
	var useColebrook bool
	var maxSize int
	var segmentsCSV string
	var nodesCSV string

	c := &cobra.Command{
		Use:   "calculate",
		Short: "Solve a network and print the result as JSON",
		RunE: func(_ *cobra.Command, _ []string) error {
			net, err := loadNetwork(input)
			if err != nil {
				return err
			}
			slog.Debug("network loaded",
				"file", input, "nodes", len(net.Nodes), "segments", len(net.Segments))

			opts := []solve.Option{solve.WithMaxNetworkSize(maxSize)}
			if useColebrook {
				opts = append(opts, solve.WithColebrook())
			}

			res, err := solve.Solve(net, opts...)
			if err != nil {
				return err
			}
			if err = printJSON(res); err != nil {
				return err
			}
			if !res.Success {
				return errors.New(res.Message)
			}

			if segmentsCSV != "" {
				if err = writeCSV(segmentsCSV, func(f *os.File) error {
					return export.Segments(f, res)
				}); err != nil {
					return err
				}
				slog.Info("segment table written", "file", segmentsCSV)
			}
			if nodesCSV != "" {
				if err = writeCSV(nodesCSV, func(f *os.File) error {
					return export.Nodes(f, res)
				}); err != nil {
					return err
				}
				slog.Info("node table written", "file", nodesCSV)
			}

			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Network file, JSON or YAML (required)")
	c.Flags().BoolVar(&useColebrook, "colebrook", false, "Use the Colebrook-White friction correlation")
	c.Flags().IntVar(&maxSize, "max-size", solve.DefaultMaxNetworkSize, "Maximum node/segment count")
	c.Flags().StringVar(&segmentsCSV, "segments-csv", "", "Write the segment table to this CSV file")
	c.Flags().StringVar(&nodesCSV, "nodes-csv", "", "Write the node table to this CSV file")

	_ = c.MarkFlagRequired("input")

	return c
}

// writeCSV creates path and hands the open file to render.
func writeCSV(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err = render(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
