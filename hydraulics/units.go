// units.go — physical constants and conversions between the model's
// field units and the SI units this package computes in.
package hydraulics

// Gravity is the standard gravitational acceleration in m/s².
const Gravity = 9.81

// ReLaminarLimit is the Reynolds number below which flow is treated as
// laminar.
const ReLaminarLimit = 2300.0

// lpmPerM3s is the number of L/min in one m³/s.
const lpmPerM3s = 60000.0

// mmPerM is the number of millimeters in one meter.
const mmPerM = 1000.0

// paPerBar is the number of pascals in one bar.
const paPerBar = 1e5

// LpmToM3s converts liters per minute to cubic meters per second.
func LpmToM3s(lpm float64) float64 { return lpm / lpmPerM3s }

// M3sToLpm converts cubic meters per second to liters per minute.
func M3sToLpm(m3s float64) float64 { return m3s * lpmPerM3s }

// MmToM converts millimeters to meters.
func MmToM(mm float64) float64 { return mm / mmPerM }

// PaToBar converts pascals to bar.
func PaToBar(pa float64) float64 { return pa / paPerBar }

// BarToPa converts bar to pascals.
func BarToPa(bar float64) float64 { return bar * paPerBar }
