// solve.go — the Solve and Validate entry points and the pipeline
// stages: flow distribution, pressure propagation, critical path and
// result assembly.
package solve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydronet/hydraulics"
	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/topology"
	"github.com/katalvlaran/hydronet/validate"
)

// minHydrantPressureBar is the recommended minimum delivered pressure
// at an active hydrant; anything below it is flagged as a warning.
const minHydrantPressureBar = 2.0

// Validate is the validate-only entry point: it enforces the size limit
// and runs every structural and field check without solving anything.
// Complexity: O(V + E).
func Validate(net *network.Network, opts ...Option) (*validate.Report, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err = checkSize(net, o); err != nil {
		return nil, err
	}

	return validate.Check(net), nil
}

// Solve runs the complete calculation pipeline over net and returns an
// immutable Result. Validation failure yields a Result with
// Success=false and the full violation list; the error return is
// reserved for nil input, invalid options, the resource limit, and the
// non-finite guard.
// Complexity: O(V + E) time and space.
func Solve(net *network.Network, opts ...Option) (*network.Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err = checkSize(net, o); err != nil {
		return nil, err
	}

	unit := reportUnit(net)

	report := validate.Check(net)
	if !report.OK() {
		return &network.Result{
			Success:      false,
			Message:      fmt.Sprintf("network validation failed: %d violation(s)", len(report.Violations)),
			Warnings:     report.Messages(),
			Segments:     []network.SegmentResult{},
			Nodes:        []network.NodeResult{},
			PressureUnit: unit,
		}, nil
	}

	tree, err := topology.Build(net)
	if err != nil {
		// Unreachable for a validated network; surfaced rather than
		// swallowed in case the two packages ever disagree.
		return nil, err
	}

	flows, totalDemand := distributeFlows(tree)

	figures := make([]hydraulics.Figures, len(tree.Segments))
	for i, seg := range tree.Segments {
		figures[i] = hydraulics.SolveSegment(seg, flows[i], net.Fluid, o.UseColebrook)
	}

	pressurePa, distance, err := propagatePressure(net, tree, figures)
	if err != nil {
		return nil, err
	}

	critical, critWarning := findCriticalPath(tree, pressurePa, distance, unit)

	res := assemble(net, tree, figures, pressurePa, distance, totalDemand, unit)
	res.CriticalPath = critical
	if critWarning != "" {
		res.Warnings = append(res.Warnings, critWarning)
	}

	return res, nil
}

// checkSize rejects inputs whose node or segment count exceeds the
// configured limit, before any traversal begins.
func checkSize(net *network.Network, o Options) error {
	if len(net.Nodes) > o.MaxNetworkSize || len(net.Segments) > o.MaxNetworkSize {
		return fmt.Errorf("%w: %d nodes / %d segments, limit %d",
			ErrNetworkTooLarge, len(net.Nodes), len(net.Segments), o.MaxNetworkSize)
	}

	return nil
}

// reportUnit returns the requested reporting unit, defaulting to bar
// when the field is empty or unknown.
func reportUnit(net *network.Network) network.PressureUnit {
	if net.PressureUnit.Valid() {
		return net.PressureUnit
	}

	return network.Bar
}

// distributeFlows aggregates downstream active demand onto each
// segment via one post-order pass (children resolved before parents).
// It returns per-segment flows in L/min, indexed like tree.Segments,
// and the total network demand. Inactive hydrants keep their position
// but contribute zero; zero total demand simply produces zero-flow
// segments.
func distributeFlows(tree *topology.Tree) (flows []float64, total float64) {
	subtree := make([]float64, len(tree.Nodes))
	flows = make([]float64, len(tree.Segments))

	for _, idx := range tree.PostOrder() {
		n := tree.Nodes[idx]
		demand := 0.0
		if n.Kind == network.KindHydrant && n.Active {
			demand = n.Demand
		}
		for _, si := range tree.Downstream(idx) {
			demand += flows[si]
		}
		subtree[idx] = demand
		if si, ok := tree.ParentSegment(idx); ok {
			flows[si] = demand
		}
	}

	return flows, subtree[tree.Source]
}

// propagatePressure walks the tree top-down (each node strictly after
// its unique parent), deriving absolute pressure in pascals and
// cumulative distance from the source for every node:
//
//	P_child = P_parent − ΔP_total(segment) − ρ·g·(z_child − z_parent)
//
// with the elevation term applied only when the network requests it.
// A NaN or infinite pressure trips the non-finite guard.
func propagatePressure(net *network.Network, tree *topology.Tree, figures []hydraulics.Figures) (pressurePa, distance []float64, err error) {
	pressurePa = make([]float64, len(tree.Nodes))
	distance = make([]float64, len(tree.Nodes))
	pressurePa[tree.Source] = hydraulics.BarToPa(net.SourcePressure)

	for _, idx := range tree.Order() {
		for _, si := range tree.Downstream(idx) {
			seg := tree.Segments[si]
			to, _ := tree.NodeIndex(seg.To)

			drop := figures[si].TotalPa
			if net.IncludeElevation {
				deltaZ := tree.Nodes[to].Elevation - tree.Nodes[idx].Elevation
				drop += hydraulics.ElevationHead(deltaZ, net.Fluid.Density)
			}

			pressurePa[to] = pressurePa[idx] - drop
			distance[to] = distance[idx] + seg.Length
		}
	}

	for i, p := range pressurePa {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, nil, fmt.Errorf("%w: pressure at node %q", ErrNonFinite, tree.Nodes[i].ID)
		}
	}

	return pressurePa, distance, nil
}

// findCriticalPath selects the active hydrant with the minimum
// pressure (exact ties broken by lexicographically smallest node ID)
// and reconstructs its source-to-node path from the tree's parent
// pointers. When no active hydrant exists it returns a nil path and a
// warning instead of an error.
func findCriticalPath(tree *topology.Tree, pressurePa, distance []float64, unit network.PressureUnit) (*network.CriticalPath, string) {
	best := -1
	for i, n := range tree.Nodes {
		if n.Kind != network.KindHydrant || !n.Active {
			continue
		}
		switch {
		case best == -1,
			pressurePa[i] < pressurePa[best],
			pressurePa[i] == pressurePa[best] && n.ID < tree.Nodes[best].ID:
			best = i
		}
	}
	if best == -1 {
		return nil, "no active hydrant; critical path not computed"
	}

	id := tree.Nodes[best].ID
	nodes, segments, err := tree.PathTo(id)
	if err != nil {
		// PathTo cannot fail for an index taken from the tree itself.
		return nil, fmt.Sprintf("critical path for hydrant %q unavailable: %v", id, err)
	}

	return &network.CriticalPath{
		Nodes:       nodes,
		Segments:    segments,
		TotalLength: distance[best],
		Hydrant:     id,
		Pressure:    unit.FromPascal(pressurePa[best]),
	}, ""
}

// assemble converts the internal figures into the public Result in
// input order, converting pressures to the reporting unit and
// collecting the non-fatal warnings: negative node pressures first (in
// node order), then sub-threshold active hydrants (node order), then
// zero-flow segments (segment order). The sources are independent: an
// active hydrant at negative pressure draws both pressure warnings.
// It performs no recomputation.
func assemble(net *network.Network, tree *topology.Tree, figures []hydraulics.Figures, pressurePa, distance []float64, totalDemand float64, unit network.PressureUnit) *network.Result {
	res := &network.Result{
		Success:      true,
		Message:      "calculation completed",
		Segments:     make([]network.SegmentResult, len(tree.Segments)),
		Nodes:        make([]network.NodeResult, len(tree.Nodes)),
		TotalDemand:  totalDemand,
		PressureUnit: unit,
	}

	for i, seg := range tree.Segments {
		f := figures[i]
		res.Segments[i] = network.SegmentResult{
			ID:             seg.ID,
			From:           seg.From,
			To:             seg.To,
			Flow:           f.FlowLpm,
			FlowM3s:        f.FlowM3s,
			Velocity:       f.Velocity,
			Reynolds:       f.Reynolds,
			FrictionFactor: f.FrictionFactor,
			DeltaPMajor:    unit.FromPascal(f.MajorPa),
			DeltaPMinor:    unit.FromPascal(f.MinorPa),
			DeltaPTotal:    unit.FromPascal(f.TotalPa),
			Regime:         f.Regime,
		}
	}

	for i, n := range tree.Nodes {
		demand := 0.0
		if n.Kind == network.KindHydrant && n.Active {
			demand = n.Demand
		}
		res.Nodes[i] = network.NodeResult{
			ID:        n.ID,
			Kind:      n.Kind,
			Elevation: n.Elevation,
			Demand:    demand,
			Pressure:  unit.FromPascal(pressurePa[i]),
			Active:    n.Active,
			Distance:  distance[i],
		}
	}

	thresholdPa := hydraulics.BarToPa(minHydrantPressureBar)
	for i, n := range tree.Nodes {
		if pressurePa[i] < 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"negative gauge pressure at node %q (%.2f %s)",
				n.ID, unit.FromPascal(pressurePa[i]), unit))
		}
	}
	for i, n := range tree.Nodes {
		if n.Kind == network.KindHydrant && n.Active && pressurePa[i] < thresholdPa {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"active hydrant %q below recommended minimum pressure (%.2f %s < %.2f %s)",
				n.ID, unit.FromPascal(pressurePa[i]), unit, unit.FromPascal(thresholdPa), unit))
		}
	}
	for i, seg := range tree.Segments {
		if figures[i].FlowLpm == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"segment %q carries zero flow", seg.ID))
		}
	}

	return res
}
