// csv.go — CSV rendering of segment and node result tables.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/hydronet/network"
)

// ErrNoData is returned when the result holds no rows to export.
var ErrNoData = errors.New("export: no data to export")

// Segments writes the per-segment result table as CSV. Rows follow the
// order already present in res; pressure columns are labeled with the
// result's unit.
func Segments(w io.Writer, res *network.Result) error {
	if res == nil || len(res.Segments) == 0 {
		return ErrNoData
	}

	cw := csv.NewWriter(w)
	unit := res.PressureUnit
	header := []string{
		"Edge ID",
		"From Node",
		"To Node",
		"Flow (L/min)",
		"Flow (m3/s)",
		"Velocity (m/s)",
		"Reynolds",
		"Friction Factor",
		fmt.Sprintf("Major Loss (%s)", unit),
		fmt.Sprintf("Minor Loss (%s)", unit),
		fmt.Sprintf("Total Loss (%s)", unit),
		"Flow Regime",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for _, s := range res.Segments {
		row := []string{
			s.ID,
			s.From,
			s.To,
			fmt.Sprintf("%.2f", s.Flow),
			fmt.Sprintf("%.6f", s.FlowM3s),
			fmt.Sprintf("%.3f", s.Velocity),
			fmt.Sprintf("%.0f", s.Reynolds),
			fmt.Sprintf("%.6f", s.FrictionFactor),
			fmt.Sprintf("%.4f", s.DeltaPMajor),
			fmt.Sprintf("%.4f", s.DeltaPMinor),
			fmt.Sprintf("%.4f", s.DeltaPTotal),
			string(s.Regime),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write segment %q: %w", s.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// Nodes writes the per-node result table as CSV. Rows follow the order
// already present in res.
func Nodes(w io.Writer, res *network.Result) error {
	if res == nil || len(res.Nodes) == 0 {
		return ErrNoData
	}

	cw := csv.NewWriter(w)
	header := []string{
		"Node ID",
		"Type",
		"Elevation (m)",
		"Demand (L/min)",
		fmt.Sprintf("Pressure (%s)", res.PressureUnit),
		"Active",
		"Distance from Source (m)",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for _, n := range res.Nodes {
		active := "No"
		if n.Active {
			active = "Yes"
		}
		row := []string{
			n.ID,
			string(n.Kind),
			fmt.Sprintf("%.2f", n.Elevation),
			fmt.Sprintf("%.2f", n.Demand),
			fmt.Sprintf("%.4f", n.Pressure),
			active,
			fmt.Sprintf("%.2f", n.Distance),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write node %q: %w", n.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
