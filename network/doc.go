// Package network defines the data model for tree-topology hydrant
// networks: nodes, pipe segments, fluid properties, the complete
// Network input, and the result types produced by solving.
//
// Overview:
//
//   - A Network is a fully-formed, immutable description of one
//     hydraulic problem: a node set, an oriented segment set, a source
//     pressure, fluid properties, and reporting preferences. It is
//     constructed once per request, validated once, consumed to produce
//     an immutable Result, and discarded. No type in this package holds
//     cross-request mutable state.
//   - Wire format: every input and result type carries JSON and YAML
//     struct tags, so a Network serialized to its external
//     representation and parsed back reproduces every field exactly.
//   - KFactors exposes the static fitting→K reference table as a copy;
//     the solver itself never consults it, it exists for UI and
//     configuration layers.
//   - Demo returns a small canned network (one source, two junctions,
//     two hydrants) that validates and solves; the solver treats it as
//     an ordinary input.
//
// Units:
//
//	elevation, length, distance    meters
//	diameter, roughness            millimeters
//	demand, flow                   liters per minute
//	source pressure                bar
//	density                        kg/m³
//	dynamic viscosity              Pa·s
//
// Reported pressures use the Network's PressureUnit (bar, kPa or MPa);
// all internal arithmetic is in pascals (see package hydraulics).
package network
