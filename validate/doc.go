// Package validate enforces the structural and field invariants of a
// hydrant network before any solving takes place.
//
// Overview:
//
//   - Check runs every validation pass and returns a Report carrying
//     the COMPLETE list of violations, not just the first one, so a
//     validate-only entry point can show the user everything that is
//     wrong in one round trip.
//   - Validation is deterministic and total: it always terminates with
//     either an empty report (valid) or the full violation list, and
//     never panics on malformed topology.
//   - Violations are values, not exceptions: each one carries a Kind
//     for programmatic branching (errors.Is against the matching
//     sentinel) plus the offending node or segment ID.
//
// Checks performed, in order:
//
//  1. Node and segment IDs are unique.
//  2. Every segment's endpoints reference existing nodes.
//  3. Exactly one source node exists.
//  4. Length and diameter are positive, roughness and demand
//     non-negative.
//  5. Segment count equals node count − 1 and an iterative traversal
//     from the source reaches every node exactly once (revisit ⇒ cycle
//     or non-tree, unvisited ⇒ disconnected); every non-source node has
//     exactly one incoming segment.
//  6. At least one active hydrant has demand > 0.
//
// Complexity: O(V + E) time and space for the whole report.
package validate
