// Package topology_test verifies tree construction, traversal orders
// and path reconstruction over the index-based structure.
package topology_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/topology"
)

// branched builds the canned demo network:
//
//	S ──P1── J1 ──P3── H1
//	          │
//	         P2
//	          │
//	         J2 ──P4── H2
func branched() *network.Network {
	net := network.Demo()
	return &net
}

func TestBuild_IndexesAndSource(t *testing.T) {
	tr, err := topology.Build(branched())
	require.NoError(t, err)

	require.Len(t, tr.Nodes, 5)
	require.Len(t, tr.Segments, 4)

	src, ok := tr.NodeIndex("S")
	require.True(t, ok)
	require.Equal(t, src, tr.Source)

	_, ok = tr.NodeIndex("NOPE")
	require.False(t, ok)

	p2, ok := tr.SegmentIndex("P2")
	require.True(t, ok)
	require.Equal(t, "J1", tr.Segments[p2].From)
}

func TestBuild_NoSource(t *testing.T) {
	net := branched()
	net.Nodes[0].Kind = network.KindJunction
	_, err := topology.Build(net)
	require.ErrorIs(t, err, topology.ErrNoSource)
}

func TestBuild_DuplicateParent(t *testing.T) {
	net := branched()
	net.Segments = append(net.Segments, network.Segment{
		ID: "PX", From: "J2", To: "H1", Length: 1, Diameter: 50,
	})
	_, err := topology.Build(net)
	require.ErrorIs(t, err, topology.ErrNotTree)
}

func TestBuild_UnreachableNode(t *testing.T) {
	net := branched()
	net.Nodes = append(net.Nodes, network.Node{ID: "ISLAND", Kind: network.KindJunction})
	_, err := topology.Build(net)
	require.ErrorIs(t, err, topology.ErrNotTree)
}

// Order must place every parent strictly before its children.
func TestOrder_ParentsBeforeChildren(t *testing.T) {
	tr, err := topology.Build(branched())
	require.NoError(t, err)

	order := tr.Order()
	require.Len(t, order, len(tr.Nodes))
	require.Equal(t, tr.Source, order[0])

	pos := make(map[int]int, len(order))
	for i, idx := range order {
		pos[idx] = i
	}
	for _, idx := range order {
		if si, ok := tr.ParentSegment(idx); ok {
			parent, _ := tr.NodeIndex(tr.Segments[si].From)
			require.Less(t, pos[parent], pos[idx],
				"parent of %q must be visited first", tr.Nodes[idx].ID)
		}
	}
}

// PostOrder is the exact reverse: children strictly before parents.
func TestPostOrder_ChildrenBeforeParents(t *testing.T) {
	tr, err := topology.Build(branched())
	require.NoError(t, err)

	post := tr.PostOrder()
	order := tr.Order()
	require.Len(t, post, len(order))
	for i := range order {
		require.Equal(t, order[len(order)-1-i], post[i])
	}
	require.Equal(t, tr.Source, post[len(post)-1])
}

func TestPathTo(t *testing.T) {
	tr, err := topology.Build(branched())
	require.NoError(t, err)

	nodes, segments, err := tr.PathTo("H2")
	require.NoError(t, err)
	require.Equal(t, []string{"S", "J1", "J2", "H2"}, nodes)
	require.Equal(t, []string{"P1", "P2", "P4"}, segments)
}

func TestPathTo_Source(t *testing.T) {
	tr, err := topology.Build(branched())
	require.NoError(t, err)

	nodes, segments, err := tr.PathTo("S")
	require.NoError(t, err)
	require.Equal(t, []string{"S"}, nodes)
	require.Empty(t, segments)
}

func TestPathTo_UnknownNode(t *testing.T) {
	tr, err := topology.Build(branched())
	require.NoError(t, err)

	_, _, err = tr.PathTo("GHOST")
	require.ErrorIs(t, err, topology.ErrNodeNotFound)
}

// A long linear run must build and traverse without recursion limits.
func TestBuild_DeepLinearChain(t *testing.T) {
	const depth = 5000

	net := &network.Network{
		Nodes:          []network.Node{{ID: "N0", Kind: network.KindSource}},
		SourcePressure: 8,
		Fluid:          network.DefaultFluid(),
	}
	for i := 1; i <= depth; i++ {
		kind := network.KindJunction
		if i == depth {
			kind = network.KindHydrant
		}
		net.Nodes = append(net.Nodes, network.Node{
			ID: fmt.Sprintf("N%d", i), Kind: kind, Demand: 100, Active: true,
		})
		net.Segments = append(net.Segments, network.Segment{
			ID:   fmt.Sprintf("P%d", i),
			From: fmt.Sprintf("N%d", i-1), To: fmt.Sprintf("N%d", i),
			Length: 1, Diameter: 100,
		})
	}

	tr, err := topology.Build(net)
	require.NoError(t, err)
	require.Len(t, tr.Order(), depth+1)

	nodes, segments, err := tr.PathTo(fmt.Sprintf("N%d", depth))
	require.NoError(t, err)
	require.Len(t, nodes, depth+1)
	require.Len(t, segments, depth)
}
