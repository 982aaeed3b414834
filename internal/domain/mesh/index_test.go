package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestIndex() EdgeIndex {
	return NewEdgeIndex([]Edge{
		{A: "b", B: "a", RSSI: map[Band][2]int{BandHigh: {-60, -61}}},
		{A: "b", B: "c", RSSI: map[Band][2]int{BandHigh: {-70, -71}}},
	})
}

func TestEdgeIndex_GetIsOrderIndependent(t *testing.T) {
	idx := buildTestIndex()

	e1, ok := idx.Get("a", "b")
	require.True(t, ok)
	e2, ok := idx.Get("b", "a")
	require.True(t, ok)
	assert.Equal(t, e1, e2)
}

func TestEdgeIndex_NeighborsSorted(t *testing.T) {
	idx := buildTestIndex()
	assert.Equal(t, []string{"a", "c"}, idx.Neighbors("b"))
	assert.Equal(t, []string{"b"}, idx.Neighbors("a"))
	assert.Empty(t, idx.Neighbors("missing"))
}

func TestEdgeIndex_RSSI(t *testing.T) {
	idx := buildTestIndex()

	rssi, ok := idx.RSSI("a", "b", BandHigh)
	require.True(t, ok)
	assert.Equal(t, -61, rssi)

	_, ok = idx.RSSI("a", "c", BandHigh)
	assert.False(t, ok, "no edge measured between a and c")
}

func TestEdgeIndex_LenAndAll(t *testing.T) {
	idx := buildTestIndex()
	assert.Equal(t, 2, idx.Len())
	assert.Len(t, idx.All(), 2)
}

func TestInput_SortedNodeIDs(t *testing.T) {
	in := Input{Nodes: map[string]Node{
		"c": {ID: "c"}, "a": {ID: "a"}, "b": {ID: "b"},
	}}
	assert.Equal(t, []string{"a", "b", "c"}, in.SortedNodeIDs())
}
