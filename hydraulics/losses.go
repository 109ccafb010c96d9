// losses.go — velocity, Reynolds number, and the three pressure-loss
// components (major, minor, elevation), all in SI with pascal results.
package hydraulics

import "math"

// Velocity returns the mean flow velocity v = Q/A for a circular pipe,
// with Q in m³/s and the diameter in meters. Non-positive diameter
// yields zero.
func Velocity(flowM3s, diameterM float64) float64 {
	if diameterM <= 0 {
		return 0
	}
	area := math.Pi * diameterM * diameterM / 4.0

	return flowM3s / area
}

// Reynolds returns the Reynolds number Re = ρ·v·D/μ. Zero velocity or
// diameter yields zero.
func Reynolds(velocity, diameterM, density, viscosity float64) float64 {
	if velocity == 0 || diameterM == 0 {
		return 0
	}

	return density * velocity * diameterM / viscosity
}

// MajorLoss returns the Darcy-Weisbach friction pressure drop
// ΔP = f·(L/D)·(ρv²/2) in pascals. Non-positive diameter yields zero.
func MajorLoss(frictionFactor, lengthM, diameterM, velocity, density float64) float64 {
	if diameterM <= 0 {
		return 0
	}
	dynamicPressure := 0.5 * density * velocity * velocity

	return frictionFactor * (lengthM / diameterM) * dynamicPressure
}

// MinorLoss returns the fitting pressure drop ΔP = K·(ρv²/2) in
// pascals.
func MinorLoss(kTotal, velocity, density float64) float64 {
	return kTotal * 0.5 * density * velocity * velocity
}

// ElevationHead returns the static pressure difference ΔP = ρ·g·Δz in
// pascals for an elevation change Δz in meters (downstream minus
// upstream). Positive Δz (climbing) costs pressure; negative Δz
// recovers it.
func ElevationHead(deltaElevationM, density float64) float64 {
	return density * Gravity * deltaElevationM
}
