// validate.go — the Check entry point and its per-invariant helpers.
//
// Each helper appends to the shared Report; none of them aborts early,
// so a single Check call surfaces every independent violation at once.
package validate

import "github.com/katalvlaran/hydronet/network"

// Check runs every validation pass over net and returns the complete
// Report. It never solves anything and never mutates net.
// Complexity: O(V + E) time and space.
func Check(net *network.Network) *Report {
	r := &Report{}
	if net == nil {
		r.add(SourceCount, "", "network is nil")
		return r
	}

	checkUniqueIDs(net, r)
	checkReferences(net, r)
	sourceID, sourceOK := checkSingleSource(net, r)
	checkDimensions(net, r)
	checkDemands(net, r)

	// Spanning-tree and reachability checks need a unique root; with
	// zero or multiple sources they would only produce noise on top of
	// the SourceCount violation already recorded.
	if sourceOK {
		checkSpanningTree(net, r, sourceID)
	}
	checkActiveDemand(net, r)

	return r
}

// checkUniqueIDs verifies that node and segment IDs are unique.
func checkUniqueIDs(net *network.Network, r *Report) {
	seenNodes := make(map[string]bool, len(net.Nodes))
	for _, n := range net.Nodes {
		if seenNodes[n.ID] {
			r.add(DuplicateID, n.ID, "duplicate node ID %q", n.ID)
			continue
		}
		seenNodes[n.ID] = true
	}

	seenSegs := make(map[string]bool, len(net.Segments))
	for _, s := range net.Segments {
		if seenSegs[s.ID] {
			r.add(DuplicateID, s.ID, "duplicate segment ID %q", s.ID)
			continue
		}
		seenSegs[s.ID] = true
	}
}

// checkReferences verifies that every segment endpoint names an
// existing node.
func checkReferences(net *network.Network, r *Report) {
	ids := make(map[string]bool, len(net.Nodes))
	for _, n := range net.Nodes {
		ids[n.ID] = true
	}

	for _, s := range net.Segments {
		if !ids[s.From] {
			r.add(DanglingReference, s.ID,
				"segment %q references non-existent upstream node %q", s.ID, s.From)
		}
		if !ids[s.To] {
			r.add(DanglingReference, s.ID,
				"segment %q references non-existent downstream node %q", s.ID, s.To)
		}
	}
}

// checkSingleSource verifies exactly one source node exists and returns
// its ID when it does.
func checkSingleSource(net *network.Network, r *Report) (string, bool) {
	var sources []string
	for _, n := range net.Nodes {
		if n.Kind == network.KindSource {
			sources = append(sources, n.ID)
		}
	}

	switch len(sources) {
	case 1:
		return sources[0], true
	case 0:
		r.add(SourceCount, "", "no source node found; exactly one source is required")
	default:
		r.add(SourceCount, sources[0],
			"multiple source nodes found (%v); exactly one source is required", sources)
	}

	return "", false
}

// checkDimensions verifies pipe lengths and diameters are positive and
// roughness is non-negative.
func checkDimensions(net *network.Network, r *Report) {
	for _, s := range net.Segments {
		if s.Length <= 0 {
			r.add(NonPositiveDimension, s.ID,
				"segment %q has invalid length %g m", s.ID, s.Length)
		}
		if s.Diameter <= 0 {
			r.add(NonPositiveDimension, s.ID,
				"segment %q has invalid diameter %g mm", s.ID, s.Diameter)
		}
		if s.Roughness < 0 {
			r.add(NonPositiveDimension, s.ID,
				"segment %q has negative roughness %g mm", s.ID, s.Roughness)
		}
	}
}

// checkDemands verifies no node carries negative demand.
func checkDemands(net *network.Network, r *Report) {
	for _, n := range net.Nodes {
		if n.Demand < 0 {
			r.add(NegativeDemand, n.ID,
				"node %q has negative demand %g L/min", n.ID, n.Demand)
		}
	}
}

// checkSpanningTree verifies the oriented segment set forms a spanning
// tree rooted at the source: edge count is node count − 1, each
// non-source node has exactly one incoming segment, and an iterative
// breadth-first traversal from the source visits every node exactly
// once.
func checkSpanningTree(net *network.Network, r *Report, sourceID string) {
	nNodes, nSegs := len(net.Nodes), len(net.Segments)
	if nSegs != nNodes-1 {
		r.add(CycleOrNotSpanning, "",
			"network has %d segments for %d nodes; a spanning tree needs exactly %d",
			nSegs, nNodes, nNodes-1)
	}

	// Oriented adjacency and incoming-segment counts.
	children := make(map[string][]string, nNodes)
	incoming := make(map[string]int, nNodes)
	for _, s := range net.Segments {
		children[s.From] = append(children[s.From], s.To)
		incoming[s.To]++
	}

	for _, n := range net.Nodes {
		if n.ID == sourceID {
			if incoming[n.ID] > 0 {
				r.add(CycleOrNotSpanning, n.ID,
					"source node %q has an incoming segment", n.ID)
			}
			continue
		}
		if incoming[n.ID] > 1 {
			r.add(CycleOrNotSpanning, n.ID,
				"node %q has %d incoming segments; a tree allows exactly one",
				n.ID, incoming[n.ID])
		}
	}

	// Iterative traversal from the source; a revisit means a cycle (or
	// parallel paths), an unvisited node means disconnection.
	visited := make(map[string]bool, nNodes)
	queue := []string{sourceID}
	visited[sourceID] = true
	revisit := false
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range children[cur] {
			if visited[next] {
				revisit = true
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	if revisit {
		r.add(CycleOrNotSpanning, "",
			"traversal from source %q revisited a node; the network is not a tree", sourceID)
	}

	for _, n := range net.Nodes {
		if !visited[n.ID] {
			r.add(DisconnectedNode, n.ID,
				"node %q is not reachable from source %q", n.ID, sourceID)
		}
	}
}

// checkActiveDemand verifies at least one active hydrant has positive
// demand.
func checkActiveDemand(net *network.Network, r *Report) {
	var active int
	var total float64
	for _, n := range net.Nodes {
		if n.Kind == network.KindHydrant && n.Active {
			active++
			total += n.Demand
		}
	}

	switch {
	case active == 0:
		r.add(NoActiveDemand, "",
			"no active hydrants; activate at least one hydrant with demand > 0")
	case total <= 0:
		r.add(NoActiveDemand, "",
			"total active demand is zero; set positive demand on an active hydrant")
	}
}
