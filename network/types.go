// This file declares NodeKind, Node, Segment, Fluid, PressureUnit and
// the Network input type, together with their sentinel errors.
//
// Errors:
//
//	ErrUnknownKind - node kind is not source/junction/hydrant.
//	ErrUnknownUnit - pressure unit is not bar/kPa/MPa.
package network

import "errors"

// Sentinel errors for model-level checks.
var (
	// ErrUnknownKind indicates a node kind outside the known set.
	ErrUnknownKind = errors.New("network: unknown node kind")

	// ErrUnknownUnit indicates a pressure unit outside the known set.
	ErrUnknownUnit = errors.New("network: unknown pressure unit")
)

// NodeKind enumerates the three node roles in a hydrant network.
type NodeKind string

const (
	// KindSource is the single pressure-supplying root of the tree.
	KindSource NodeKind = "source"

	// KindJunction is a non-demand branching node.
	KindJunction NodeKind = "junction"

	// KindHydrant is a demand point with a flow requirement.
	KindHydrant NodeKind = "hydrant"
)

// Valid reports whether k is one of the three known kinds.
func (k NodeKind) Valid() bool {
	return k == KindSource || k == KindJunction || k == KindHydrant
}

// Node is one point of the network: a source, junction or hydrant.
//
// Demand and Active are meaningful only for hydrants; both are carried
// (and round-tripped) for every node so the wire format stays uniform.
type Node struct {
	// ID uniquely identifies this node within its Network.
	ID string `json:"node_id" yaml:"node_id"`

	// Kind is the node role: source, junction or hydrant.
	Kind NodeKind `json:"type" yaml:"type"`

	// Elevation is the node elevation in meters.
	Elevation float64 `json:"elevation_m" yaml:"elevation_m"`

	// Demand is the water demand in L/min (hydrants only).
	Demand float64 `json:"demand_lpm" yaml:"demand_lpm"`

	// Active marks a hydrant as drawing water in this scenario.
	Active bool `json:"is_active" yaml:"is_active"`
}

// MinorLossComponent is one named fitting (valve, elbow, tee, ...)
// contributing a K factor to a segment's minor loss.
type MinorLossComponent struct {
	// Name identifies the fitting, e.g. "gate_valve_open".
	Name string `json:"name" yaml:"name"`

	// K is the loss coefficient of this fitting.
	K float64 `json:"K" yaml:"K"`
}

// Segment is a pipe connecting an upstream node to a downstream node.
//
// The minor-loss coefficient is given either as the scalar MinorK or as
// the MinorComponents list; a non-empty list overrides the scalar.
type Segment struct {
	// ID uniquely identifies this segment within its Network.
	ID string `json:"edge_id" yaml:"edge_id"`

	// From is the upstream node ID.
	From string `json:"from_node" yaml:"from_node"`

	// To is the downstream node ID.
	To string `json:"to_node" yaml:"to_node"`

	// Length is the pipe length in meters.
	Length float64 `json:"length_m" yaml:"length_m"`

	// Diameter is the pipe internal diameter in millimeters.
	Diameter float64 `json:"diameter_mm" yaml:"diameter_mm"`

	// Roughness is the absolute roughness (epsilon) in millimeters.
	Roughness float64 `json:"roughness_mm" yaml:"roughness_mm"`

	// MinorK is the total minor-loss coefficient, used when
	// MinorComponents is empty.
	MinorK float64 `json:"minor_K" yaml:"minor_K"`

	// MinorComponents itemizes the fittings on this segment; when
	// non-empty their K values are summed and MinorK is ignored.
	MinorComponents []MinorLossComponent `json:"minor_components,omitempty" yaml:"minor_components,omitempty"`
}

// TotalK returns the effective minor-loss coefficient of the segment:
// the sum over MinorComponents when the list is non-empty, else MinorK.
// Complexity: O(len(MinorComponents)).
func (s Segment) TotalK() float64 {
	if len(s.MinorComponents) == 0 {
		return s.MinorK
	}
	var total float64
	for _, c := range s.MinorComponents {
		total += c.K
	}

	return total
}

// Fluid holds the transported fluid's properties.
type Fluid struct {
	// Density in kg/m³.
	Density float64 `json:"density_kg_m3" yaml:"density_kg_m3"`

	// Viscosity is the dynamic viscosity in Pa·s.
	Viscosity float64 `json:"viscosity_pa_s" yaml:"viscosity_pa_s"`
}

// DefaultFluid returns water at 20 °C (998.0 kg/m³, 1.002e-3 Pa·s).
func DefaultFluid() Fluid {
	return Fluid{Density: 998.0, Viscosity: 1.002e-3}
}

// PressureUnit selects the unit for reported pressures.
type PressureUnit string

const (
	// Bar reports pressures in bar (100 000 Pa).
	Bar PressureUnit = "bar"

	// KPa reports pressures in kilopascal (1 000 Pa).
	KPa PressureUnit = "kPa"

	// MPa reports pressures in megapascal (1 000 000 Pa).
	MPa PressureUnit = "MPa"
)

// pascalsPer maps each unit to its size in pascals.
var pascalsPer = map[PressureUnit]float64{
	Bar: 1e5,
	KPa: 1e3,
	MPa: 1e6,
}

// Valid reports whether u is one of the three known units.
func (u PressureUnit) Valid() bool {
	_, ok := pascalsPer[u]
	return ok
}

// FromPascal converts a pressure in pascals to this unit.
// Unknown units fall back to bar so a half-filled input cannot poison
// the arithmetic after validation has passed.
func (u PressureUnit) FromPascal(pa float64) float64 {
	f, ok := pascalsPer[u]
	if !ok {
		f = pascalsPer[Bar]
	}

	return pa / f
}

// Network is the complete, immutable input for one calculation.
type Network struct {
	// Nodes is the node set.
	Nodes []Node `json:"nodes" yaml:"nodes"`

	// Segments is the oriented (upstream→downstream) pipe set.
	Segments []Segment `json:"edges" yaml:"edges"`

	// SourcePressure is the pressure at the source node in bar.
	SourcePressure float64 `json:"source_pressure_bar" yaml:"source_pressure_bar"`

	// Fluid holds the fluid properties.
	Fluid Fluid `json:"fluid" yaml:"fluid"`

	// IncludeElevation enables the elevation head term during
	// pressure propagation.
	IncludeElevation bool `json:"include_elevation" yaml:"include_elevation"`

	// PressureUnit selects the unit of reported pressures.
	PressureUnit PressureUnit `json:"pressure_unit" yaml:"pressure_unit"`
}
