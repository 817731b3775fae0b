// Package scc_test exercises the strongly-connected-component detector.
package scc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toporder/digraph"
	"github.com/katalvlaran/toporder/scc"
)

// flatten concatenates all component members for partition checks.
func flatten(comps [][]string) []string {
	var out []string
	for _, c := range comps {
		out = append(out, c...)
	}

	return out
}

// TestComponents_NilGraph verifies the nil guard.
func TestComponents_NilGraph(t *testing.T) {
	comps, err := scc.Components[string](nil)
	assert.Nil(t, comps)
	assert.ErrorIs(t, err, scc.ErrNilGraph)
}

// TestComponents_EmptyGraph yields no components.
func TestComponents_EmptyGraph(t *testing.T) {
	g := digraph.New[string]()
	comps, err := scc.Components[string](g)
	assert.NoError(t, err)
	assert.Empty(t, comps)
}

// TestComponents_ChainIsSingletons checks that an acyclic chain a→b
// decomposes into singletons, emitted in traversal completion order.
func TestComponents_ChainIsSingletons(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")

	comps, err := scc.Components[string](g)
	require.NoError(t, err)
	// b finishes first (deepest), then a
	assert.Equal(t, [][]string{{"b"}, {"a"}}, comps)
}

// TestComponents_SingleCycle groups a 3-ring into one component.
func TestComponents_SingleCycle(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")

	comps, err := scc.Components[string](g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, comps[0])
}

// TestComponents_TwoCyclesBridged keeps separate knots separate:
//
//	a ⇄ b ──▶ c ⇄ d
func TestComponents_TwoCyclesBridged(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "a")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "d")
	_, _ = g.AddEdge("d", "c")

	comps, err := scc.Components[string](g)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	// downstream knot completes first
	assert.ElementsMatch(t, []string{"c", "d"}, comps[0])
	assert.ElementsMatch(t, []string{"a", "b"}, comps[1])
}

// TestComponents_NestedCycles merges overlapping rings into one
// component:
//
//	a → b → c → a   and   b → d → b
func TestComponents_NestedCycles(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")
	_, _ = g.AddEdge("b", "d")
	_, _ = g.AddEdge("d", "b")

	comps, err := scc.Components[string](g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, comps[0])
}

// TestComponents_SelfLoopStaysSingleton: a loop edge does not enlarge
// a component; loop policy is the caller's concern.
func TestComponents_SelfLoopStaysSingleton(t *testing.T) {
	g := digraph.New[string](digraph.WithSelfLoops())
	_, _ = g.AddEdge("a", "a")
	_ = g.AddNode("b")

	comps, err := scc.Components[string](g)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, comps)
}

// TestComponents_Partition: every node lands in exactly one component.
func TestComponents_Partition(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "b")
	_, _ = g.AddEdge("c", "d")
	_ = g.AddNode("isolated")

	comps, err := scc.Components[string](g)
	require.NoError(t, err)
	assert.ElementsMatch(t, g.Nodes(), flatten(comps))
}

// TestComponents_Deterministic: repeated runs on the same graph agree
// exactly, since digraph enumerates deterministically.
func TestComponents_Deterministic(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")
	_, _ = g.AddEdge("c", "d")
	_, _ = g.AddEdge("d", "e")
	_, _ = g.AddEdge("e", "d")

	first, err := scc.Components[string](g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := scc.Components[string](g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestComponents_DeepChain guards the explicit-stack traversal: a
// 100k-node chain must not exhaust the goroutine stack.
func TestComponents_DeepChain(t *testing.T) {
	const n = 100_000
	g := digraph.New[int]()
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(i, i+1)
	}

	comps, err := scc.Components[int](g)
	require.NoError(t, err)
	assert.Len(t, comps, n)
}

// ring is a minimal caller-owned graph: n nodes, each pointing at the
// next, closing at the end.
type ring struct{ n int }

func (r ring) Nodes() []int {
	out := make([]int, r.n)
	for i := range out {
		out[i] = i
	}

	return out
}

func (r ring) Successors(v int) []int { return []int{(v + 1) % r.n} }

// TestComponents_ForeignGraph runs the detector on a non-digraph
// implementation of the Graph contract.
func TestComponents_ForeignGraph(t *testing.T) {
	comps, err := scc.Components[int](ring{n: 5})
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, comps[0])
}
