package mesh

import "sort"

// EdgeIndex is a read-only adjacency index over a set of candidate edges,
// built once per planning call. Every accessor that returns a node-ID
// slice returns it in sorted order, so callers never need to re-sort at
// the use site (see §9's "fix this at the data-model layer").
type EdgeIndex struct {
	edges     []Edge
	byPair    map[[2]string]int // sorted(a,b) -> index into edges
	neighbors map[string][]string
}

// NewEdgeIndex builds an index from a flat edge list.
func NewEdgeIndex(edges []Edge) EdgeIndex {
	idx := EdgeIndex{
		edges:     edges,
		byPair:    make(map[[2]string]int, len(edges)),
		neighbors: make(map[string][]string),
	}
	for i, e := range edges {
		idx.byPair[sortedPair(e.A, e.B)] = i
		idx.neighbors[e.A] = append(idx.neighbors[e.A], e.B)
		idx.neighbors[e.B] = append(idx.neighbors[e.B], e.A)
	}
	for id := range idx.neighbors {
		sort.Strings(idx.neighbors[id])
	}
	return idx
}

func sortedPair(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

// Get returns the edge between a and b, if one was measured.
func (idx EdgeIndex) Get(a, b string) (Edge, bool) {
	i, ok := idx.byPair[sortedPair(a, b)]
	if !ok {
		return Edge{}, false
	}
	return idx.edges[i], true
}

// Neighbors returns the sorted list of node IDs with a measured edge to id.
func (idx EdgeIndex) Neighbors(id string) []string {
	return idx.neighbors[id]
}

// All returns every edge in the index, in input order.
func (idx EdgeIndex) All() []Edge {
	return idx.edges
}

// Len returns the number of distinct edges.
func (idx EdgeIndex) Len() int {
	return len(idx.edges)
}

// RSSI looks up rssi[from→to] in band across any measured edge, regardless
// of whether that edge was used for backhaul. Missing measurements return
// ok == false; callers treat that as "no known interference".
func (idx EdgeIndex) RSSI(from, to string, band Band) (int, bool) {
	e, ok := idx.Get(from, to)
	if !ok {
		return 0, false
	}
	return e.DirectedRSSI(from, to, band)
}

// Input is the fully validated, in-memory record a planning call consumes.
type Input struct {
	Nodes  map[string]Node
	Edges  EdgeIndex
	Config Config
}

// SortedNodeIDs returns every node ID in the input, sorted ascending.
func (in Input) SortedNodeIDs() []string {
	ids := make([]string, 0, len(in.Nodes))
	for id := range in.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
