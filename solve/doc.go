// Package solve orchestrates a complete hydrant network calculation:
// validation gate, flow distribution, per-segment hydraulics, pressure
// propagation, critical-path extraction and result assembly.
//
// Overview:
//
//   - Solve is a pure, deterministic function of its input: identical
//     networks yield bit-identical Results, including the critical-path
//     tie-break, and no shared mutable state exists, so concurrent
//     invocations need no locking.
//   - Pipeline: size limit → validate.Check → topology.Build → subtree
//     demand aggregation in post-order (children before parents) →
//     hydraulics.SolveSegment per segment → pressure propagation in
//     breadth-first order (each node after its unique parent) →
//     minimum-pressure active hydrant with lexicographic ID tie-break →
//     assembly in input order with unit conversion at the edge.
//   - Validation failure is data, not an error: the Result carries
//     Success=false, a summary message and the full violation list, and
//     no partial results. The error return is reserved for a nil
//     network, invalid options, the resource limit, and the non-finite
//     guard.
//   - Warnings (negative node pressure, active hydrant below the 2 bar
//     recommended minimum, zero-flow segments) accompany a successful
//     Result and never halt computation.
//   - Validate is the validate-only entry point: same size limit, same
//     checks, no solving.
//
// Options follow the functional pattern: DefaultOptions values amended
// by WithMaxNetworkSize and WithColebrook; invalid options surface as
// ErrOptionViolation when Solve or Validate runs.
//
// Cancellation is the caller's concern: the pipeline has no suspension
// points, all traversals are iterative and O(V + E), and the size limit
// bounds worst-case latency up front.
package solve
