// Package topology builds a rooted spanning tree over a set of candidate
// mesh nodes using a constrained, weight-driven variant of Prim's
// algorithm (§4.3).
package topology

import (
	"math"
	"sort"

	"github.com/Jazzy96/topo-planner/internal/domain/mesh"
	"github.com/Jazzy96/topo-planner/internal/weight"
	"github.com/Jazzy96/topo-planner/pkg/logger"
)

// frontierEntry is a not-yet-attached node's current best attachment:
// the parent it would attach to, the band it would backhaul over, and
// the weight of that attachment.
type frontierEntry struct {
	parent string
	band   mesh.Band
	weight float64
	level  int
}

// Generator builds the rooted tree described by §4.3.
type Generator struct {
	log *logger.Logger
}

// New returns a Generator that logs growth-loop milestones through log.
func New(log *logger.Logger) *Generator {
	return &Generator{log: log}
}

// Build runs the constrained-Prim growth loop to completion, or returns
// a *mesh.Error with kind TopologyUnreachable if some node cannot be
// attached under the configured constraints.
func (g *Generator) Build(nodes map[string]mesh.Node, edges mesh.EdgeIndex, cfg mesh.Config) (*mesh.Tree, error) {
	root := selectRoot(nodes)
	tree := mesh.NewTree(root)

	outOfTree := make(map[string]struct{}, len(nodes))
	for id := range nodes {
		if id != root {
			outOfTree[id] = struct{}{}
		}
	}

	frontier := make(map[string]frontierEntry, len(outOfTree))
	relax(root, tree, nodes, edges, cfg, outOfTree, frontier)

	for len(outOfTree) > 0 {
		bestID, best, ok := pickBest(outOfTree, frontier)
		if !ok {
			return nil, unreachableError(outOfTree, tree)
		}

		tree.Attach(best.parent, bestID, best.band, nodes[bestID].Load)
		delete(outOfTree, bestID)
		delete(frontier, bestID)

		if tree.Nodes[best.parent].Degree() >= cfg.MaxDegree {
			invalidate(best.parent, tree, nodes, edges, cfg, outOfTree, frontier)
		}
		relax(bestID, tree, nodes, edges, cfg, outOfTree, frontier)
	}

	if g.log != nil {
		g.log.TopologyBuilt(root, len(nodes), tree.LevelCounts())
	}
	return tree, nil
}

// selectRoot picks the node with the highest offered load, ties broken
// by lexicographically smaller ID.
func selectRoot(nodes map[string]mesh.Node) string {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	root := ids[0]
	bestLoad := nodes[root].Load
	for _, id := range ids[1:] {
		if nodes[id].Load > bestLoad {
			root = id
			bestLoad = nodes[id].Load
		}
	}
	return root
}

// relax recomputes u's effect on the frontier of every out-of-tree node
// adjacent to it, keeping the better of the existing and new entries.
func relax(u string, tree *mesh.Tree, nodes map[string]mesh.Node, edges mesh.EdgeIndex, cfg mesh.Config, outOfTree map[string]struct{}, frontier map[string]frontierEntry) {
	for _, v := range edges.Neighbors(u) {
		if _, pending := outOfTree[v]; !pending {
			continue
		}
		offer(u, v, tree, nodes, edges, cfg, frontier)
	}
}

// offer evaluates attaching v to u over both bands and updates v's
// frontier entry if either beats what is already there.
func offer(u, v string, tree *mesh.Tree, nodes map[string]mesh.Node, edges mesh.EdgeIndex, cfg mesh.Config, frontier map[string]frontierEntry) {
	current, has := frontier[v]
	best := current
	if !has {
		best = frontierEntry{weight: math.Inf(-1)}
	}
	improved := false
	for _, band := range mesh.Bands {
		w := weight.Evaluate(weight.Candidate{Parent: u, Child: v, Band: band}, nodes, edges, tree, cfg)
		if w > best.weight {
			best = frontierEntry{parent: u, band: band, weight: w, level: tree.Level(u) + 1}
			improved = true
		}
	}
	if improved && (!has || best.weight > current.weight) {
		frontier[v] = best
	}
}

// invalidate recomputes, from scratch against every in-tree node, the
// frontier entry of every out-of-tree node currently pointed at a parent
// that has just run out of degree capacity.
func invalidate(parent string, tree *mesh.Tree, nodes map[string]mesh.Node, edges mesh.EdgeIndex, cfg mesh.Config, outOfTree map[string]struct{}, frontier map[string]frontierEntry) {
	affected := make([]string, 0)
	for v, e := range frontier {
		if e.parent == parent {
			affected = append(affected, v)
		}
	}
	sort.Strings(affected)

	for _, v := range affected {
		delete(frontier, v)
		for _, u := range edges.Neighbors(v) {
			if tree.Contains(u) {
				offer(u, v, tree, nodes, edges, cfg, frontier)
			}
		}
	}
}

// pickBest selects the out-of-tree node with the highest frontier weight,
// tie-broken by lower resulting level then lexicographically smaller ID.
func pickBest(outOfTree map[string]struct{}, frontier map[string]frontierEntry) (string, frontierEntry, bool) {
	ids := make([]string, 0, len(outOfTree))
	for id := range outOfTree {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var bestID string
	var best frontierEntry
	found := false
	for _, id := range ids {
		e, ok := frontier[id]
		if !ok {
			continue
		}
		if !found || better(e, id, best, bestID) {
			bestID, best, found = id, e, true
		}
	}
	return bestID, best, found
}

func better(a frontierEntry, aID string, b frontierEntry, bID string) bool {
	if a.weight != b.weight {
		return a.weight > b.weight
	}
	if a.level != b.level {
		return a.level < b.level
	}
	return aID < bID
}

func unreachableError(outOfTree map[string]struct{}, tree *mesh.Tree) *mesh.Error {
	ids := make([]string, 0, len(outOfTree))
	for id := range outOfTree {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return mesh.NewTopologyUnreachableError(ids, len(tree.Nodes))
}
