// Package topology turns a validated node/segment list into an
// oriented tree over flat, index-based storage.
//
// Overview:
//
//   - Build copies the input nodes and segments into flat slices and
//     wires children as segment-index lists plus a parent-segment
//     pointer per node. No pointers between nodes exist, so the
//     structure is free of reference cycles and cheap to discard after
//     each request. Lookups by ID go through small index maps.
//   - Order is computed once, iteratively, with an explicit queue
//     (breadth-first from the source), so tree depth never translates
//     into call-stack depth. Parents always precede their children in
//     Order; traversing Order backwards therefore yields a valid
//     post-order (children before parents), which is how downstream
//     demand is aggregated.
//   - PathTo reconstructs the unique source-to-node path by walking
//     parent pointers and reversing, mirroring how breadth-first parent
//     maps are unwound elsewhere in this module.
//
// Build assumes the input already passed package validate; the
// remaining structural failures (missing source, unreachable node) are
// still reported as sentinel errors rather than trusted away.
//
// Complexity: Build is O(V + E) time and space; PathTo is O(depth).
package topology
