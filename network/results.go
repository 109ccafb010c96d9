// This file declares the derived result types assembled by the solver:
// per-segment figures, per-node pressures, the critical path, and the
// top-level Result envelope.
package network

// FlowRegime tags which friction-factor branch produced a segment's
// figures.
type FlowRegime string

const (
	// RegimeStatic marks a zero-flow segment (no friction computed).
	RegimeStatic FlowRegime = "static"

	// RegimeLaminar marks laminar flow (Re < 2300), f = 64/Re.
	RegimeLaminar FlowRegime = "laminar"

	// RegimeTurbulent marks turbulent flow, Swamee-Jain or
	// Colebrook-White.
	RegimeTurbulent FlowRegime = "turbulent"
)

// SegmentResult holds the hydraulic figures computed for one segment.
// Pressure drops are reported in the Result's PressureUnit.
type SegmentResult struct {
	// ID echoes the segment ID.
	ID string `json:"edge_id" yaml:"edge_id"`

	// From and To echo the segment endpoints.
	From string `json:"from_node" yaml:"from_node"`
	To   string `json:"to_node" yaml:"to_node"`

	// Flow in L/min and in m³/s.
	Flow     float64 `json:"flow_lpm" yaml:"flow_lpm"`
	FlowM3s  float64 `json:"flow_m3s" yaml:"flow_m3s"`
	Velocity float64 `json:"velocity_ms" yaml:"velocity_ms"`

	// Reynolds number and Darcy friction factor.
	Reynolds       float64 `json:"reynolds" yaml:"reynolds"`
	FrictionFactor float64 `json:"friction_factor" yaml:"friction_factor"`

	// Pressure drops in the reporting unit.
	DeltaPMajor float64 `json:"delta_p_major" yaml:"delta_p_major"`
	DeltaPMinor float64 `json:"delta_p_minor" yaml:"delta_p_minor"`
	DeltaPTotal float64 `json:"delta_p_total" yaml:"delta_p_total"`

	// Regime tags which friction branch fired.
	Regime FlowRegime `json:"flow_regime" yaml:"flow_regime"`
}

// NodeResult holds the derived state of one node.
type NodeResult struct {
	// ID echoes the node ID.
	ID string `json:"node_id" yaml:"node_id"`

	// Kind echoes the node kind.
	Kind NodeKind `json:"type" yaml:"type"`

	// Elevation echoes the node elevation in meters.
	Elevation float64 `json:"elevation_m" yaml:"elevation_m"`

	// Demand is the effective demand in L/min (zero when inactive).
	Demand float64 `json:"demand_lpm" yaml:"demand_lpm"`

	// Pressure at the node, in the reporting unit.
	Pressure float64 `json:"pressure" yaml:"pressure"`

	// Active echoes the hydrant active flag.
	Active bool `json:"is_active" yaml:"is_active"`

	// Distance is the cumulative pipe length from the source in meters.
	Distance float64 `json:"distance_from_source_m" yaml:"distance_from_source_m"`
}

// CriticalPath describes the source-to-hydrant path terminating at the
// active hydrant with the lowest delivered pressure.
type CriticalPath struct {
	// Nodes lists node IDs from the source to the critical hydrant.
	Nodes []string `json:"path_nodes" yaml:"path_nodes"`

	// Segments lists segment IDs along the path, in order.
	Segments []string `json:"path_edges" yaml:"path_edges"`

	// TotalLength is the path length in meters.
	TotalLength float64 `json:"total_length_m" yaml:"total_length_m"`

	// Hydrant is the critical hydrant's node ID.
	Hydrant string `json:"critical_hydrant" yaml:"critical_hydrant"`

	// Pressure is the critical hydrant's pressure in the reporting unit.
	Pressure float64 `json:"critical_pressure" yaml:"critical_pressure"`
}

// Result is the complete outcome of one calculation.
//
// Success is false only when validation rejected the input; in that
// case Segments and Nodes are empty, Message summarizes the failure and
// Warnings carries the individual violations. On success Warnings holds
// non-fatal physical anomalies (negative or sub-threshold pressures,
// zero-flow segments); they never indicate failure.
type Result struct {
	Success      bool            `json:"success" yaml:"success"`
	Message      string          `json:"message" yaml:"message"`
	Segments     []SegmentResult `json:"segments" yaml:"segments"`
	Nodes        []NodeResult    `json:"nodes" yaml:"nodes"`
	CriticalPath *CriticalPath   `json:"critical_path,omitempty" yaml:"critical_path,omitempty"`
	TotalDemand  float64         `json:"total_demand_lpm" yaml:"total_demand_lpm"`
	Warnings     []string        `json:"warnings" yaml:"warnings"`
	PressureUnit PressureUnit    `json:"pressure_unit" yaml:"pressure_unit"`
}
