// tree.go — the Tree structure, its Build constructor, and the
// path-reconstruction helpers.
package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hydronet/network"
)

// Sentinel errors for tree construction and queries.
var (
	// ErrNoSource indicates the node set contains no source node.
	ErrNoSource = errors.New("topology: source node not found")

	// ErrNotTree indicates the segment set is not a spanning tree
	// rooted at the source (cycle, duplicate parent, or unreachable
	// node).
	ErrNotTree = errors.New("topology: segments do not form a spanning tree")

	// ErrNodeNotFound indicates a query referenced an unknown node ID.
	ErrNodeNotFound = errors.New("topology: node not found")
)

// none marks the absence of a parent segment (the source node).
const none = -1

// Tree is an oriented tree over flat index-based storage.
//
// Nodes and Segments preserve the input order; children and parent
// links are segment indices into Segments. A Tree is built once per
// request and never mutated afterwards.
type Tree struct {
	// Nodes holds the node set in input order.
	Nodes []network.Node

	// Segments holds the segment set in input order.
	Segments []network.Segment

	// Source is the index of the source node in Nodes.
	Source int

	nodeIdx   map[string]int // node ID → index in Nodes
	segIdx    map[string]int // segment ID → index in Segments
	children  [][]int        // node index → outgoing segment indices
	parentSeg []int          // node index → incoming segment index, none for the source
	order     []int          // node indices, breadth-first from the source
}

// Build constructs the Tree for net. The input is expected to have
// passed package validate; Build still reports the structural failures
// it cannot proceed past (ErrNoSource, ErrNotTree).
// Complexity: O(V + E) time and space.
func Build(net *network.Network) (*Tree, error) {
	t := &Tree{
		Nodes:     append([]network.Node(nil), net.Nodes...),
		Segments:  append([]network.Segment(nil), net.Segments...),
		Source:    none,
		nodeIdx:   make(map[string]int, len(net.Nodes)),
		segIdx:    make(map[string]int, len(net.Segments)),
		children:  make([][]int, len(net.Nodes)),
		parentSeg: make([]int, len(net.Nodes)),
	}

	for i, n := range t.Nodes {
		t.nodeIdx[n.ID] = i
		t.parentSeg[i] = none
		if n.Kind == network.KindSource {
			t.Source = i
		}
	}
	if t.Source == none {
		return nil, ErrNoSource
	}

	for i, s := range t.Segments {
		t.segIdx[s.ID] = i
		from, ok := t.nodeIdx[s.From]
		if !ok {
			return nil, fmt.Errorf("%w: segment %q upstream %q", ErrNodeNotFound, s.ID, s.From)
		}
		to, ok := t.nodeIdx[s.To]
		if !ok {
			return nil, fmt.Errorf("%w: segment %q downstream %q", ErrNodeNotFound, s.ID, s.To)
		}
		if t.parentSeg[to] != none || to == t.Source {
			return nil, fmt.Errorf("%w: node %q has multiple incoming segments", ErrNotTree, s.To)
		}
		t.children[from] = append(t.children[from], i)
		t.parentSeg[to] = i
	}

	if err := t.computeOrder(); err != nil {
		return nil, err
	}

	return t, nil
}

// computeOrder fills t.order with an iterative breadth-first traversal
// from the source, parents strictly before children. An explicit queue
// keeps degenerate (near-linear) trees off the call stack.
func (t *Tree) computeOrder() error {
	t.order = make([]int, 0, len(t.Nodes))
	queue := make([]int, 0, len(t.Nodes))
	queue = append(queue, t.Source)
	seen := make([]bool, len(t.Nodes))
	seen[t.Source] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t.order = append(t.order, cur)
		for _, si := range t.children[cur] {
			next := t.nodeIdx[t.Segments[si].To]
			if seen[next] {
				return fmt.Errorf("%w: node %q reached twice", ErrNotTree, t.Nodes[next].ID)
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}

	if len(t.order) != len(t.Nodes) {
		return fmt.Errorf("%w: %d of %d nodes reachable from the source",
			ErrNotTree, len(t.order), len(t.Nodes))
	}

	return nil
}

// Order returns node indices in breadth-first order from the source,
// parents before children. The returned slice is shared; callers must
// not modify it.
func (t *Tree) Order() []int { return t.order }

// PostOrder returns node indices with every child before its parent:
// the reverse of Order.
// Complexity: O(V) per call.
func (t *Tree) PostOrder() []int {
	out := make([]int, len(t.order))
	for i, idx := range t.order {
		out[len(t.order)-1-i] = idx
	}

	return out
}

// NodeIndex resolves a node ID to its index in Nodes.
func (t *Tree) NodeIndex(id string) (int, bool) {
	i, ok := t.nodeIdx[id]
	return i, ok
}

// SegmentIndex resolves a segment ID to its index in Segments.
func (t *Tree) SegmentIndex(id string) (int, bool) {
	i, ok := t.segIdx[id]
	return i, ok
}

// Downstream returns the outgoing segment indices of the node at idx.
// The returned slice is shared; callers must not modify it.
func (t *Tree) Downstream(idx int) []int { return t.children[idx] }

// ParentSegment returns the incoming segment index of the node at idx,
// and false for the source node.
func (t *Tree) ParentSegment(idx int) (int, bool) {
	si := t.parentSeg[idx]
	return si, si != none
}

// PathTo reconstructs the unique source-to-node path terminating at the
// node with the given ID, by walking parent pointers back to the source
// and reversing. It returns the node IDs (source first) and the segment
// IDs between them.
// Complexity: O(depth) time and space.
func (t *Tree) PathTo(id string) (nodes, segments []string, err error) {
	cur, ok := t.nodeIdx[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	nodes = append(nodes, t.Nodes[cur].ID)
	for {
		si, hasParent := t.ParentSegment(cur)
		if !hasParent {
			break
		}
		segments = append(segments, t.Segments[si].ID)
		cur = t.nodeIdx[t.Segments[si].From]
		nodes = append(nodes, t.Nodes[cur].ID)
	}

	reverse(nodes)
	reverse(segments)

	return nodes, segments, nil
}

// reverse flips a string slice in place.
func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
