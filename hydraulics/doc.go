// Package hydraulics implements the per-segment physics of pipe flow:
// velocity, Reynolds number, regime-dependent friction factors, and the
// major, minor and elevation components of pressure loss.
//
// Overview:
//
//   - Every function is pure: output depends only on arguments, no
//     state is read or written, so concurrent callers need no locking.
//   - Inputs are SI (meters, m³/s, kg/m³, Pa·s); pressure results are
//     pascals, the canonical internal unit. Conversion helpers bridge
//     the model's field units (L/min, millimeters, bar).
//   - Friction factor selection is regime-dependent: below Reynolds
//     2300 the laminar closed form f = 64/Re applies; above it the
//     Swamee-Jain explicit approximation
//
//     f = 0.25 / [log10(ε/(3.7·D) + 5.74/Re^0.9)]²
//
//     is used by default, with the iterative Colebrook-White equation
//     available as a higher-accuracy alternative (Newton iteration
//     seeded from Swamee-Jain).
//   - Major loss follows Darcy-Weisbach, ΔP = f·(L/D)·(ρv²/2); minor
//     loss is K·(ρv²/2); elevation head is ρ·g·Δz.
//   - SolveSegment bundles the above for one segment and one flow. Zero
//     flow short-circuits to all-zero figures with the "static" regime
//     tag, which keeps divisions and log arguments out of forbidden
//     domains without any error path.
//
// Complexity: every function is O(1); FrictionColebrook is bounded by
// its fixed iteration cap.
package hydraulics
