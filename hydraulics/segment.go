// segment.go — SolveSegment, the pure per-segment solver combining
// velocity, Reynolds, friction and the loss components for one flow.
package hydraulics

import "github.com/katalvlaran/hydronet/network"

// Figures holds the raw hydraulic figures of one segment. Pressure
// drops are in pascals; unit conversion happens only at result
// assembly.
type Figures struct {
	// FlowLpm and FlowM3s are the segment flow in both units.
	FlowLpm float64
	FlowM3s float64

	// Velocity in m/s.
	Velocity float64

	// Reynolds number (dimensionless).
	Reynolds float64

	// FrictionFactor is the Darcy friction factor.
	FrictionFactor float64

	// MajorPa, MinorPa and TotalPa are the pressure drops in pascals.
	MajorPa float64
	MinorPa float64
	TotalPa float64

	// Regime tags which friction branch fired.
	Regime network.FlowRegime
}

// SolveSegment computes the hydraulic figures for one segment carrying
// flowLpm. Zero flow short-circuits: velocity, Reynolds, friction and
// all losses are zero and the regime is RegimeStatic, which guards the
// division and logarithm domains without an error path.
// Complexity: O(1).
func SolveSegment(seg network.Segment, flowLpm float64, fluid network.Fluid, useColebrook bool) Figures {
	if flowLpm == 0 {
		return Figures{Regime: network.RegimeStatic}
	}

	flowM3s := LpmToM3s(flowLpm)
	diameterM := MmToM(seg.Diameter)
	roughnessM := MmToM(seg.Roughness)

	velocity := Velocity(flowM3s, diameterM)
	reynolds := Reynolds(velocity, diameterM, fluid.Density, fluid.Viscosity)
	friction, regime := FrictionFactor(reynolds, roughnessM, diameterM, useColebrook)

	major := MajorLoss(friction, seg.Length, diameterM, velocity, fluid.Density)
	minor := MinorLoss(seg.TotalK(), velocity, fluid.Density)

	return Figures{
		FlowLpm:        flowLpm,
		FlowM3s:        flowM3s,
		Velocity:       velocity,
		Reynolds:       reynolds,
		FrictionFactor: friction,
		MajorPa:        major,
		MinorPa:        minor,
		TotalPa:        major + minor,
		Regime:         regime,
	}
}
