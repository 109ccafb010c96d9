// Package solve_test exercises the full solver pipeline under the
// canonical scenarios: linear and branched networks, elevation sign,
// tie-breaking, warnings, limits and determinism.
package solve_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/solve"
)

// SolveSuite exercises solve.Solve end to end.
type SolveSuite struct {
	suite.Suite
}

// linear returns S ──P1(100 m, 100 mm, K=2)── H1 (500 L/min) at 8 bar.
func (s *SolveSuite) linear() *network.Network {
	return &network.Network{
		Nodes: []network.Node{
			{ID: "S", Kind: network.KindSource},
			{ID: "H1", Kind: network.KindHydrant, Demand: 500, Active: true},
		},
		Segments: []network.Segment{
			{ID: "P1", From: "S", To: "H1", Length: 100, Diameter: 100, Roughness: 0.045, MinorK: 2.0},
		},
		SourcePressure:   8,
		Fluid:            network.DefaultFluid(),
		IncludeElevation: true,
		PressureUnit:     network.Bar,
	}
}

func (s *SolveSuite) segment(res *network.Result, id string) network.SegmentResult {
	for _, seg := range res.Segments {
		if seg.ID == id {
			return seg
		}
	}
	s.T().Fatalf("segment %q not in result", id)
	return network.SegmentResult{}
}

func (s *SolveSuite) node(res *network.Result, id string) network.NodeResult {
	for _, n := range res.Nodes {
		if n.ID == id {
			return n
		}
	}
	s.T().Fatalf("node %q not in result", id)
	return network.NodeResult{}
}

// TestLinearNetwork covers the single-pipe case: flow equals demand,
// source keeps its configured pressure, the hydrant loses head.
func (s *SolveSuite) TestLinearNetwork() {
	res, err := solve.Solve(s.linear())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Success)
	require.Len(s.T(), res.Segments, 1)
	require.Len(s.T(), res.Nodes, 2)

	p1 := s.segment(res, "P1")
	require.Equal(s.T(), 500.0, p1.Flow)
	require.Equal(s.T(), network.RegimeTurbulent, p1.Regime)
	require.Greater(s.T(), p1.Reynolds, 2300.0)

	src := s.node(res, "S")
	require.Equal(s.T(), 8.0, src.Pressure)
	require.Equal(s.T(), 0.0, src.Distance)

	h1 := s.node(res, "H1")
	require.Less(s.T(), h1.Pressure, 8.0)
	require.Greater(s.T(), h1.Pressure, 0.0)
	require.Equal(s.T(), 100.0, h1.Distance)
	require.Equal(s.T(), 500.0, res.TotalDemand)
}

// TestTwoSegmentPath pins the worked linear scenario: S —50 m/150 mm/
// K=0.5→ J1 —20 m/65 mm/K=3.5→ H1 at 500 L/min, flat terrain. Both
// segments carry the full demand and the hydrant pressure equals the
// source minus both total losses.
func (s *SolveSuite) TestTwoSegmentPath() {
	net := &network.Network{
		Nodes: []network.Node{
			{ID: "S", Kind: network.KindSource},
			{ID: "J1", Kind: network.KindJunction},
			{ID: "H1", Kind: network.KindHydrant, Demand: 500, Active: true},
		},
		Segments: []network.Segment{
			{ID: "P1", From: "S", To: "J1", Length: 50, Diameter: 150, Roughness: 0.045, MinorK: 0.5},
			{ID: "P2", From: "J1", To: "H1", Length: 20, Diameter: 65, Roughness: 0.045, MinorK: 3.5},
		},
		SourcePressure:   8,
		Fluid:            network.DefaultFluid(),
		IncludeElevation: true,
		PressureUnit:     network.Bar,
	}

	res, err := solve.Solve(net)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Success)

	require.Equal(s.T(), 500.0, s.segment(res, "P1").Flow)
	require.Equal(s.T(), 500.0, s.segment(res, "P2").Flow)
	require.Equal(s.T(), 500.0, res.TotalDemand)

	wantH1 := 8.0 - s.segment(res, "P1").DeltaPTotal - s.segment(res, "P2").DeltaPTotal
	require.InDelta(s.T(), wantH1, s.node(res, "H1").Pressure, 1e-9)

	require.NotNil(s.T(), res.CriticalPath)
	require.Equal(s.T(), "H1", res.CriticalPath.Hydrant)
	require.Equal(s.T(), []string{"S", "J1", "H1"}, res.CriticalPath.Nodes)
	require.Equal(s.T(), []string{"P1", "P2"}, res.CriticalPath.Segments)
	require.Equal(s.T(), 70.0, res.CriticalPath.TotalLength)
}

// TestBranchedFlowDistribution covers the demo network: the trunk
// carries the sum of both hydrant demands, each branch its own.
func (s *SolveSuite) TestBranchedFlowDistribution() {
	demo := network.Demo()
	res, err := solve.Solve(&demo)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Success)

	require.Equal(s.T(), 1000.0, s.segment(res, "P1").Flow)
	require.Equal(s.T(), 500.0, s.segment(res, "P2").Flow)
	require.Equal(s.T(), 500.0, s.segment(res, "P3").Flow)
	require.Equal(s.T(), 500.0, s.segment(res, "P4").Flow)
	require.Equal(s.T(), 1000.0, res.TotalDemand)
}

// TestFlowConservation checks that at every junction the incoming flow
// equals the sum of outgoing flows.
func (s *SolveSuite) TestFlowConservation() {
	demo := network.Demo()
	res, err := solve.Solve(&demo)
	require.NoError(s.T(), err)

	incoming := make(map[string]float64)
	outgoing := make(map[string]float64)
	for _, seg := range res.Segments {
		incoming[seg.To] += seg.Flow
		outgoing[seg.From] += seg.Flow
	}
	for _, n := range res.Nodes {
		if n.Kind != network.KindJunction || outgoing[n.ID] == 0 {
			continue
		}
		require.InDelta(s.T(), incoming[n.ID], outgoing[n.ID], 1e-9,
			"junction %q must conserve flow", n.ID)
	}
}

// TestCriticalPathDemo: H2 sits farther and higher, so it is critical.
func (s *SolveSuite) TestCriticalPathDemo() {
	demo := network.Demo()
	res, err := solve.Solve(&demo)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), res.CriticalPath)
	require.Equal(s.T(), "H2", res.CriticalPath.Hydrant)
	require.Equal(s.T(), []string{"S", "J1", "J2", "H2"}, res.CriticalPath.Nodes)
	require.Equal(s.T(), []string{"P1", "P2", "P4"}, res.CriticalPath.Segments)
	require.Equal(s.T(), 105.0, res.CriticalPath.TotalLength)
	require.InDelta(s.T(), s.node(res, "H2").Pressure, res.CriticalPath.Pressure, 1e-12)
}

// TestMonotonicPressure: with elevation excluded and losses
// non-negative, pressure never rises downstream.
func (s *SolveSuite) TestMonotonicPressure() {
	demo := network.Demo()
	demo.IncludeElevation = false
	res, err := solve.Solve(&demo)
	require.NoError(s.T(), err)

	pressure := make(map[string]float64, len(res.Nodes))
	for _, n := range res.Nodes {
		pressure[n.ID] = n.Pressure
	}
	for _, seg := range res.Segments {
		require.LessOrEqual(s.T(), pressure[seg.To], pressure[seg.From],
			"pressure must not rise across segment %q", seg.ID)
	}
}

// TestElevationSign pins the baseline: the elevation term is
// ρ·g·(z_child − z_parent), so a climbing segment costs exactly that
// much more than the flat case and a descending one recovers it.
func (s *SolveSuite) TestElevationSign() {
	flat := s.linear()
	flat.IncludeElevation = false
	base, err := solve.Solve(flat)
	require.NoError(s.T(), err)

	climb := s.linear()
	climb.Nodes[1].Elevation = 10
	up, err := solve.Solve(climb)
	require.NoError(s.T(), err)

	descend := s.linear()
	descend.Nodes[1].Elevation = -10
	down, err := solve.Solve(descend)
	require.NoError(s.T(), err)

	headBar := network.DefaultFluid().Density * 9.81 * 10 / 1e5
	baseP := s.node(base, "H1").Pressure
	require.InDelta(s.T(), baseP-headBar, s.node(up, "H1").Pressure, 1e-9)
	require.InDelta(s.T(), baseP+headBar, s.node(down, "H1").Pressure, 1e-9)
}

// TestInactiveHydrant keeps its branch in the topology but at zero
// flow, with the matching warning.
func (s *SolveSuite) TestInactiveHydrant() {
	net := &network.Network{
		Nodes: []network.Node{
			{ID: "S", Kind: network.KindSource},
			{ID: "H1", Kind: network.KindHydrant, Demand: 500, Active: true},
			{ID: "H2", Kind: network.KindHydrant, Demand: 500, Active: false},
		},
		Segments: []network.Segment{
			{ID: "P1", From: "S", To: "H1", Length: 100, Diameter: 100, Roughness: 0.045},
			{ID: "P2", From: "S", To: "H2", Length: 100, Diameter: 100, Roughness: 0.045},
		},
		SourcePressure: 8,
		Fluid:          network.DefaultFluid(),
		PressureUnit:   network.Bar,
	}

	res, err := solve.Solve(net)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Success)
	require.Equal(s.T(), 500.0, res.TotalDemand)

	p2 := s.segment(res, "P2")
	require.Equal(s.T(), 0.0, p2.Flow)
	require.Equal(s.T(), network.RegimeStatic, p2.Regime)

	require.Equal(s.T(), 0.0, s.node(res, "H2").Demand)
	require.True(s.T(), hasWarning(res, `segment "P2" carries zero flow`))

	// The inactive hydrant must not be considered for the critical path.
	require.Equal(s.T(), "H1", res.CriticalPath.Hydrant)
}

// TestTieBreak: two hydrants with bit-identical pressures resolve to
// the lexicographically smallest ID regardless of input order.
func (s *SolveSuite) TestTieBreak() {
	net := &network.Network{
		Nodes: []network.Node{
			{ID: "S", Kind: network.KindSource},
			{ID: "HB", Kind: network.KindHydrant, Demand: 300, Active: true},
			{ID: "HA", Kind: network.KindHydrant, Demand: 300, Active: true},
		},
		Segments: []network.Segment{
			{ID: "PB", From: "S", To: "HB", Length: 40, Diameter: 80, Roughness: 0.045, MinorK: 1},
			{ID: "PA", From: "S", To: "HA", Length: 40, Diameter: 80, Roughness: 0.045, MinorK: 1},
		},
		SourcePressure: 8,
		Fluid:          network.DefaultFluid(),
		PressureUnit:   network.Bar,
	}

	res, err := solve.Solve(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(),
		s.node(res, "HA").Pressure, s.node(res, "HB").Pressure,
		"symmetric branches must produce identical pressures")
	require.Equal(s.T(), "HA", res.CriticalPath.Hydrant)
}

// TestDeterminism: repeated invocations yield identical results.
func (s *SolveSuite) TestDeterminism() {
	demo := network.Demo()
	first, err := solve.Solve(&demo)
	require.NoError(s.T(), err)
	second, err := solve.Solve(&demo)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestValidationFailure: a rejected input produces success=false with
// the violations and no partial results.
func (s *SolveSuite) TestValidationFailure() {
	net := s.linear()
	net.Nodes[1].Kind = network.KindSource // two sources

	res, err := solve.Solve(net)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Success)
	require.Contains(s.T(), res.Message, "validation failed")
	require.Empty(s.T(), res.Segments)
	require.Empty(s.T(), res.Nodes)
	require.Nil(s.T(), res.CriticalPath)
	require.NotEmpty(s.T(), res.Warnings)
	require.True(s.T(), hasWarningContaining(res, "source count"))
}

// TestUnits: kPa reporting scales every pressure by 100 relative to bar.
func (s *SolveSuite) TestUnits() {
	demo := network.Demo()
	inBar, err := solve.Solve(&demo)
	require.NoError(s.T(), err)

	demo.PressureUnit = network.KPa
	inKPa, err := solve.Solve(&demo)
	require.NoError(s.T(), err)

	require.Equal(s.T(), network.KPa, inKPa.PressureUnit)
	require.InDelta(s.T(), 800.0, s.node(inKPa, "S").Pressure, 1e-9)
	for i := range inBar.Nodes {
		require.InDelta(s.T(), inBar.Nodes[i].Pressure*100, inKPa.Nodes[i].Pressure, 1e-9)
	}
	for i := range inBar.Segments {
		require.InDelta(s.T(), inBar.Segments[i].DeltaPTotal*100, inKPa.Segments[i].DeltaPTotal, 1e-9)
	}
}

// TestColebrookOption changes the turbulent friction factor without
// changing anything structural.
func (s *SolveSuite) TestColebrookOption() {
	sj, err := solve.Solve(s.linear())
	require.NoError(s.T(), err)
	cb, err := solve.Solve(s.linear(), solve.WithColebrook())
	require.NoError(s.T(), err)

	require.True(s.T(), cb.Success)
	require.NotEqual(s.T(),
		s.segment(sj, "P1").FrictionFactor,
		s.segment(cb, "P1").FrictionFactor)
	require.Equal(s.T(), sj.CriticalPath.Hydrant, cb.CriticalPath.Hydrant)
}

// TestLowPressureWarning flags an active hydrant delivered below the
// 2 bar recommended minimum.
func (s *SolveSuite) TestLowPressureWarning() {
	net := s.linear()
	net.SourcePressure = 1.5
	net.Nodes[1].Demand = 100 // gentle flow, small loss, still below 2 bar

	res, err := solve.Solve(net)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Success)
	require.Greater(s.T(), s.node(res, "H1").Pressure, 0.0)
	require.True(s.T(), hasWarningContaining(res, "below recommended minimum"))
}

// TestNegativePressureWarning flags physically infeasible pressures
// without failing the calculation. A hydrant driven negative is also
// below the recommended minimum, so both warnings fire.
func (s *SolveSuite) TestNegativePressureWarning() {
	net := s.linear()
	net.SourcePressure = 0.5
	net.Segments[0].Length = 200
	net.Segments[0].Diameter = 50

	res, err := solve.Solve(net)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Success)
	require.Less(s.T(), s.node(res, "H1").Pressure, 0.0)
	require.True(s.T(), hasWarningContaining(res, "negative gauge pressure"))
	require.True(s.T(), hasWarningContaining(res, "below recommended minimum"))
}

// TestNilNetwork, option and limit errors.
func (s *SolveSuite) TestGuards() {
	_, err := solve.Solve(nil)
	require.ErrorIs(s.T(), err, solve.ErrNilNetwork)

	_, err = solve.Solve(s.linear(), solve.WithMaxNetworkSize(0))
	require.ErrorIs(s.T(), err, solve.ErrOptionViolation)

	demo := network.Demo()
	_, err = solve.Solve(&demo, solve.WithMaxNetworkSize(3))
	require.ErrorIs(s.T(), err, solve.ErrNetworkTooLarge)
}

// TestNonFiniteGuard: a NaN input that slips past validation must stop
// the pipeline instead of leaking NaN pressures into the result.
func (s *SolveSuite) TestNonFiniteGuard() {
	net := s.linear()
	net.SourcePressure = math.NaN()

	res, err := solve.Solve(net)
	require.ErrorIs(s.T(), err, solve.ErrNonFinite)
	require.Nil(s.T(), res)

	net = s.linear()
	net.Fluid.Density = math.Inf(1)

	_, err = solve.Solve(net)
	require.ErrorIs(s.T(), err, solve.ErrNonFinite)
}

// TestCardinalities: result sizes mirror the input.
func (s *SolveSuite) TestCardinalities() {
	demo := network.Demo()
	res, err := solve.Solve(&demo)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Nodes, len(demo.Nodes))
	require.Len(s.T(), res.Segments, len(demo.Segments))
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// ------------------------------------------------------------------------
// Validate-only entry point.
// ------------------------------------------------------------------------

func TestValidate_Valid(t *testing.T) {
	demo := network.Demo()
	report, err := solve.Validate(&demo)
	require.NoError(t, err)
	require.True(t, report.OK())
}

func TestValidate_Invalid(t *testing.T) {
	demo := network.Demo()
	demo.Segments[0].To = "GHOST"
	report, err := solve.Validate(&demo)
	require.NoError(t, err)
	require.False(t, report.OK())
	require.NotEmpty(t, report.Messages())
}

func TestValidate_Guards(t *testing.T) {
	_, err := solve.Validate(nil)
	require.ErrorIs(t, err, solve.ErrNilNetwork)

	demo := network.Demo()
	_, err = solve.Validate(&demo, solve.WithMaxNetworkSize(2))
	require.ErrorIs(t, err, solve.ErrNetworkTooLarge)
}

// ------------------------------------------------------------------------
// helpers
// ------------------------------------------------------------------------

func hasWarning(res *network.Result, text string) bool {
	for _, w := range res.Warnings {
		if w == text {
			return true
		}
	}
	return false
}

func hasWarningContaining(res *network.Result, fragment string) bool {
	for _, w := range res.Warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}
