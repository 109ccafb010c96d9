package network

// Demo returns a small canned network for demonstration: source S at
// 8 bar feeding hydrants H1 (500 L/min) and H2 (500 L/min, elevated)
// through junctions J1 and J2. It passes validation and solves; the
// solver gives it no special treatment.
func Demo() Network {
	return Network{
		Nodes: []Node{
			{ID: "S", Kind: KindSource, Elevation: 0, Demand: 0, Active: true},
			{ID: "J1", Kind: KindJunction, Elevation: 0, Demand: 0, Active: true},
			{ID: "J2", Kind: KindJunction, Elevation: 2, Demand: 0, Active: true},
			{ID: "H1", Kind: KindHydrant, Elevation: 0, Demand: 500, Active: true},
			{ID: "H2", Kind: KindHydrant, Elevation: 3, Demand: 500, Active: true},
		},
		Segments: []Segment{
			{
				ID: "P1", From: "S", To: "J1",
				Length: 50, Diameter: 150, Roughness: 0.045,
				MinorK: 0.5,
				MinorComponents: []MinorLossComponent{
					{Name: "gate_valve_open", K: 0.2},
					{Name: "tee_run", K: 0.3},
				},
			},
			{
				ID: "P2", From: "J1", To: "J2",
				Length: 30, Diameter: 100, Roughness: 0.045,
				MinorK: 1.3,
				MinorComponents: []MinorLossComponent{
					{Name: "elbow_90_standard", K: 0.9},
					{Name: "tee_run", K: 0.3},
					{Name: "gate_valve_open", K: 0.2},
				},
			},
			{
				ID: "P3", From: "J1", To: "H1",
				Length: 20, Diameter: 65, Roughness: 0.045,
				MinorK: 3.4,
				MinorComponents: []MinorLossComponent{
					{Name: "tee_branch", K: 1.0},
					{Name: "elbow_90_standard", K: 0.9},
					{Name: "hydrant_outlet", K: 2.5},
				},
			},
			{
				ID: "P4", From: "J2", To: "H2",
				Length: 25, Diameter: 65, Roughness: 0.045,
				MinorK: 4.4,
				MinorComponents: []MinorLossComponent{
					{Name: "tee_branch", K: 1.0},
					{Name: "elbow_90_standard", K: 0.9},
					{Name: "hydrant_outlet", K: 2.5},
				},
			},
		},
		SourcePressure:   8.0,
		Fluid:            DefaultFluid(),
		IncludeElevation: true,
		PressureUnit:     Bar,
	}
}
