package network

// kFactors is the static reference table of minor-loss coefficients for
// common fittings. It is process-wide read-only configuration data;
// callers receive a copy and the solver never consults it.
var kFactors = map[string]float64{
	// Valves
	"gate_valve_open":      0.2,
	"gate_valve_half":      5.6,
	"globe_valve_open":     10.0,
	"ball_valve_open":      0.05,
	"check_valve_swing":    2.5,
	"butterfly_valve_open": 0.3,

	// Elbows
	"elbow_90_standard":    0.9,
	"elbow_90_long_radius": 0.6,
	"elbow_45":             0.4,

	// Tees
	"tee_run":    0.3,
	"tee_branch": 1.0,

	// Reducers/Expanders
	"reducer_sudden":  0.5,
	"expander_sudden": 1.0,

	// Entries/Exits
	"entrance_sharp":   0.5,
	"entrance_rounded": 0.25,
	"exit":             1.0,

	// Hydrant
	"hydrant_outlet": 2.5,
}

// KFactors returns a copy of the fitting→K reference table, so callers
// can never mutate the shared table.
// Complexity: O(len(table)).
func KFactors() map[string]float64 {
	out := make(map[string]float64, len(kFactors))
	for name, k := range kFactors {
		out[name] = k
	}

	return out
}

// KFactor looks up the reference K value for a named fitting.
func KFactor(name string) (float64, bool) {
	k, ok := kFactors[name]
	return k, ok
}
