// SPDX-License-Identifier: MIT
package core_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodes_InsertionOrderAndMerge(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddNode(NodeB, core.Attrs{"x": 1, "y": 1}))
	require.NoError(t, g.AddNode(NodeA, nil))
	require.NoError(t, g.AddNode(NodeB, core.Attrs{"x": 2}))

	assert.Equal(t, []string{NodeB, NodeA}, nodeKeys(g))
	assert.Equal(t, []string{NodeB, NodeA}, g.Keys())
	assert.Equal(t, 2, g.NodeCount())

	b, ok := g.Node(NodeB)
	require.True(t, ok)
	assert.Equal(t, core.Attrs{"x": 2, "y": 1}, b)

	a, ok := g.Node(NodeA)
	require.True(t, ok)
	assert.NotNil(t, a, "nil attrs are stored as an empty store")
	assert.Empty(t, a)
}

func TestAddNodes_DoesNotAliasCallerMap(t *testing.T) {
	g := core.New[string]()
	in := core.Attrs{"x": 1}
	require.NoError(t, g.AddNode(NodeA, in))
	in["x"] = 99

	a, _ := g.Node(NodeA)
	assert.Equal(t, 1, a["x"])
}

func TestAddNodes_MergeInstallsNewMap(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddNode(NodeA, core.Attrs{"x": 1}))
	before, _ := g.Node(NodeA)

	require.NoError(t, g.AddNode(NodeA, core.Attrs{"y": 2}))
	after, _ := g.Node(NodeA)

	assert.Equal(t, core.Attrs{"x": 1}, before, "stored maps are never mutated")
	assert.Equal(t, core.Attrs{"x": 1, "y": 2}, after)
}

func TestAddEdges_UnknownEndpointIsAllOrNothing(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddNodes(core.NodeEntry[string]{Key: NodeA}, core.NodeEntry[string]{Key: NodeB}))

	err := g.AddEdges(
		core.Edge[string]{Src: NodeA, Dst: NodeB},
		core.Edge[string]{Src: NodeA, Dst: NodeX},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrReference))
	assert.Equal(t, 0, g.EdgeCount(), "the valid entry must not have been applied")

	err = g.AddEdge(NodeX, NodeA, LabelNone, nil)
	assert.ErrorIs(t, err, core.ErrReference)
}

func TestAddEdges_TripleIdentity(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddNodes(core.NodeEntry[string]{Key: NodeA}, core.NodeEntry[string]{Key: NodeB}))

	require.NoError(t, g.AddEdge(NodeA, NodeB, LabelFollows, core.Attrs{"w": 1, "keep": true}))
	require.NoError(t, g.AddEdge(NodeA, NodeB, LabelLikes, nil))
	require.NoError(t, g.AddEdge(NodeA, NodeB, LabelNone, nil))
	require.NoError(t, g.AddEdge(NodeA, NodeB, LabelFollows, core.Attrs{"w": 2}))
	require.NoError(t, g.AddEdge(NodeB, NodeA, LabelFollows, nil))

	assert.Equal(t, 4, g.EdgeCount())
	want := []core.EdgeKey[string]{
		{Src: NodeA, Dst: NodeB, Label: LabelFollows},
		{Src: NodeA, Dst: NodeB, Label: LabelLikes},
		{Src: NodeA, Dst: NodeB, Label: LabelNone},
		{Src: NodeB, Dst: NodeA, Label: LabelFollows},
	}
	if diff := cmp.Diff(want, edgeKeys(g)); diff != "" {
		t.Fatalf("edge order mismatch (-want +got):\n%s", diff)
	}

	attrs, ok := g.Edge(NodeA, NodeB, LabelFollows)
	require.True(t, ok)
	assert.Equal(t, core.Attrs{"w": 2, "keep": true}, attrs)
	assert.True(t, g.HasEdge(NodeA, NodeB, LabelNone))
	assert.False(t, g.HasEdge(NodeB, NodeA, LabelLikes))
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.New[int]()
	require.NoError(t, g.AddNode(1, nil))
	require.NoError(t, g.AddEdge(1, 1, LabelNone, nil))

	in, out, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)
	assert.Equal(t, 1, g.Stats().SelfLoops)
}

func TestNodesAndEdges_Restartable(t *testing.T) {
	g := newTriangle(t)

	first := nodeKeys(g)
	second := nodeKeys(g)
	assert.Equal(t, first, second)

	require.NoError(t, g.AddNode(NodeD, nil))
	assert.Equal(t, []string{NodeA, NodeB, NodeC, NodeD}, nodeKeys(g), "a new iteration sees the mutation")

	n := 0
	for range g.Edges() {
		n++
		break
	}
	assert.Equal(t, 1, n, "early break stops the sequence")
}

func TestNodes_BodyMayMutateGraph(t *testing.T) {
	g := newTriangle(t)
	seen := 0
	for k := range g.Nodes() {
		require.NoError(t, g.AddNode(k+"'", nil))
		seen++
	}
	assert.Equal(t, 3, seen, "iteration works on its own snapshot")
	assert.Equal(t, 6, g.NodeCount())
}

func TestAdjacency(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddEdge(NodeA, NodeC, LabelLikes, nil))
	require.NoError(t, g.AddEdge(NodeA, NodeC, LabelFollows, nil))

	out, err := g.OutEdges(NodeA)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, NodeB, out[0].Dst)

	in, err := g.InEdges(NodeC)
	require.NoError(t, err)
	assert.Len(t, in, 3)

	nbs, err := g.Neighbors(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeB, NodeC}, nbs)

	_, err = g.OutEdges(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.InEdges(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, _, err = g.Degree(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestUpdateNodes(t *testing.T) {
	g := newTriangle(t)
	before, _ := g.Node(NodeA)

	err := g.UpdateNodes(func(k string, a core.Attrs) (core.Attrs, error) {
		a["w"] = a["w"].(int) * 100
		a["key"] = k
		return a, nil
	})
	require.NoError(t, err)

	a, _ := g.Node(NodeA)
	assert.Equal(t, core.Attrs{"w": 100, "key": NodeA}, a)
	assert.Equal(t, core.Attrs{"w": 1}, before, "fn receives a private copy")
	assert.Equal(t, 3, g.EdgeCount())
}

func TestUpdateNodes_ErrorLeavesGraphUntouched(t *testing.T) {
	g := newTriangle(t)
	boom := errors.New("boom")

	err := g.UpdateNodes(func(k string, a core.Attrs) (core.Attrs, error) {
		if k == NodeC {
			return nil, boom
		}
		return core.Attrs{"w": -1}, nil
	})
	require.ErrorIs(t, err, boom)

	for k, a := range g.Nodes() {
		assert.NotEqual(t, -1, a["w"], "node %s was partially updated", k)
	}

	assert.ErrorIs(t, g.UpdateNodes(nil), core.ErrNilFunc)
}

func TestUpdateNodes_KeepsWritesMadeWhileRunning(t *testing.T) {
	g := newTriangle(t)
	calls := map[string]int{}

	err := g.UpdateNodes(func(k string, a core.Attrs) (core.Attrs, error) {
		calls[k]++
		if k == NodeA && calls[k] == 1 {
			require.NoError(t, g.AddNode(NodeA, core.Attrs{"late": true}))
		}
		a["touched"] = true
		return a, nil
	})
	require.NoError(t, err)

	a, _ := g.Node(NodeA)
	assert.Equal(t, core.Attrs{"w": 1, "late": true, "touched": true}, a)
	assert.Equal(t, map[string]int{NodeA: 2, NodeB: 1, NodeC: 1}, calls, "only the changed node is recomputed")
}

func TestUpdateNodes_CoversNodesAddedWhileRunning(t *testing.T) {
	g := newTriangle(t)
	added := false

	err := g.UpdateNodes(func(k string, a core.Attrs) (core.Attrs, error) {
		if !added {
			added = true
			require.NoError(t, g.AddNode(NodeD, core.Attrs{"w": 4}))
		}
		a["touched"] = true
		return a, nil
	})
	require.NoError(t, err)

	for k, a := range g.Nodes() {
		assert.Equal(t, true, a["touched"], "node %s", k)
	}
}

func TestUpdateEdges_KeepsWritesMadeWhileRunning(t *testing.T) {
	g := newTriangle(t)
	calls := 0

	err := g.UpdateEdges(func(e core.Edge[string]) (core.Attrs, error) {
		calls++
		if calls == 1 {
			require.NoError(t, g.AddEdge(e.Src, e.Dst, e.Label, core.Attrs{"late": true}))
		}
		e.Attrs["touched"] = true
		return e.Attrs, nil
	})
	require.NoError(t, err)

	a, _ := g.Edge(NodeA, NodeB, LabelFollows)
	assert.Equal(t, core.Attrs{"w": 10, "late": true, "touched": true}, a)
	assert.Equal(t, 4, calls)
	b, _ := g.Edge(NodeB, NodeC, LabelFollows)
	assert.Equal(t, core.Attrs{"w": 20, "touched": true}, b)
}

func TestUpdateEdges(t *testing.T) {
	g := newTriangle(t)
	err := g.UpdateEdges(func(e core.Edge[string]) (core.Attrs, error) {
		e.Attrs["label"] = e.Label
		return e.Attrs, nil
	})
	require.NoError(t, err)

	a, ok := g.Edge(NodeC, NodeA, LabelLikes)
	require.True(t, ok)
	assert.Equal(t, core.Attrs{"w": 30, "label": LabelLikes}, a)

	boom := errors.New("boom")
	err = g.UpdateEdges(func(core.Edge[string]) (core.Attrs, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	a, _ = g.Edge(NodeC, NodeA, LabelLikes)
	assert.Equal(t, LabelLikes, a["label"])

	assert.ErrorIs(t, g.UpdateEdges(nil), core.ErrNilFunc)
}

func TestReplaceNodes(t *testing.T) {
	g := newTriangle(t)
	untouched, _ := g.Node(NodeB)

	next := core.Attrs{"w": 42}
	require.NoError(t, g.ReplaceNodes(core.NodeEntry[string]{Key: NodeA, Attrs: next}))

	a, _ := g.Node(NodeA)
	assert.Equal(t, next, a)
	b, _ := g.Node(NodeB)
	assert.True(t, sameMap(untouched, b), "unnamed nodes keep their store")

	err := g.ReplaceNodes(
		core.NodeEntry[string]{Key: NodeB, Attrs: core.Attrs{"w": 0}},
		core.NodeEntry[string]{Key: NodeX, Attrs: core.Attrs{}},
	)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	b, _ = g.Node(NodeB)
	assert.Equal(t, 2, b["w"], "all-or-nothing")
}

func TestRemoveNode_CascadesAndKeepsOrder(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddNode(NodeD, nil))
	require.NoError(t, g.AddEdge(NodeC, NodeD, LabelNone, nil))

	require.NoError(t, g.RemoveNode(NodeA))

	assert.Equal(t, []string{NodeB, NodeC, NodeD}, nodeKeys(g))
	assert.Equal(t, []core.EdgeKey[string]{
		{Src: NodeB, Dst: NodeC, Label: LabelFollows},
		{Src: NodeC, Dst: NodeD, Label: LabelNone},
	}, edgeKeys(g))

	out, err := g.OutEdges(NodeC)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, NodeD, out[0].Dst)

	assert.ErrorIs(t, g.RemoveNode(NodeA), core.ErrNodeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.RemoveEdge(NodeA, NodeB, LabelFollows))
	assert.False(t, g.HasEdge(NodeA, NodeB, LabelFollows))
	assert.Equal(t, 2, g.EdgeCount())

	in, out, err := g.Degree(NodeB)
	require.NoError(t, err)
	assert.Equal(t, 0, in)
	assert.Equal(t, 1, out)

	err = g.RemoveEdge(NodeA, NodeB, LabelFollows)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestClear(t *testing.T) {
	g := newTriangle(t)
	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	require.NoError(t, g.AddNode(NodeA, nil))
	assert.True(t, g.HasNode(NodeA))
}

func TestClone_IsIndependent(t *testing.T) {
	g := newTriangle(t)
	c := g.Clone()

	require.NoError(t, c.AddNode(NodeD, nil))
	require.NoError(t, c.RemoveEdge(NodeA, NodeB, LabelFollows))

	assert.False(t, g.HasNode(NodeD))
	assert.True(t, g.HasEdge(NodeA, NodeB, LabelFollows))
	assert.Equal(t, nodeKeys(g), nodeKeys(c)[:3])

	ga, _ := g.Node(NodeA)
	ca, _ := c.Node(NodeA)
	ca["w"] = 999
	assert.Equal(t, 1, ga["w"])
}

func TestStats(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddNodes(core.NodeEntry[string]{Key: NodeD}, core.NodeEntry[string]{Key: NodeX}))
	require.NoError(t, g.AddEdge(NodeA, NodeD, LabelNone, nil))

	assert.Equal(t, core.GraphStats{Nodes: 5, Edges: 4, SelfLoops: 0, Dangling: 2, Isolated: 1}, g.Stats())
}

func TestFrame_SnapshotSurvivesCommit(t *testing.T) {
	g := newTriangle(t)
	f := g.Frame()

	require.NoError(t, g.ReplaceNodes(core.NodeEntry[string]{Key: NodeA, Attrs: core.Attrs{"w": 0}}))

	i, ok := f.Index(NodeA)
	require.True(t, ok)
	assert.Equal(t, 1, f.Nodes[i].Attrs["w"])
	assert.Equal(t, 1, f.Attrs(NodeA)["w"])
	assert.Nil(t, f.Attrs(NodeX))
	assert.Len(t, f.Edges, 3)
}
