// Package hydronet computes pressure drop and flow distribution across
// branched (tree-topology) pipe networks feeding hydrants from a single
// pressurized source.
//
// 🚰 What is hydronet?
//
//	A small, deterministic hydraulic solver that brings together:
//		• Data model: nodes, pipe segments, fluids, pressure units
//		• Validation: complete, accumulating structural & field checks
//		• Topology: index-based oriented trees with iterative traversal
//		• Hydraulics: Darcy-Weisbach, Swamee-Jain, Colebrook-White
//		• Solving: flow aggregation, pressure propagation, critical path
//		• Export: CSV tables for segments and nodes
//
// ✨ Why hydronet?
//
//   - Pure functions – one immutable input, one immutable result
//   - Deterministic – identical input yields bit-identical output
//   - Iterative traversals – deep, degenerate trees never touch the stack
//   - Complete validation – every violation reported, not just the first
//
// Everything is organized under focused subpackages:
//
//	network/    — input and result types, units, K-factor table, demo net
//	validate/   — structural and field invariant checks
//	topology/   — oriented tree over flat, index-based storage
//	hydraulics/ — per-segment physics: friction, losses, conversions
//	solve/      — the solver pipeline and its options
//	export/     — CSV rendering of result tables
//	cli/        — the hydronet command-line interface
//
// Quick ASCII example:
//
//	    S ──P1── J1 ──P3── H1 (500 L/min)
//	              │
//	             P2
//	              │
//	             J2 ──P4── H2 (500 L/min)
//
// is a five-node tree: one source, two junctions, two hydrants. Solve
// it with solve.Solve(net) and read off per-segment losses, per-node
// pressures and the critical path to the weakest hydrant.
//
//	go get github.com/katalvlaran/hydronet
package hydronet
