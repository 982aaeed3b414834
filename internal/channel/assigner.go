// Package channel implements the planner's ChannelAssigner (§4.4): a
// depth-ordered greedy allocation of one channel per node per relevant
// band, subject to interference and backhaul-sharing constraints.
package channel

import (
	"sort"

	"github.com/Jazzy96/topo-planner/internal/domain/mesh"
	"github.com/Jazzy96/topo-planner/pkg/logger"
)

// assignedRadio is one committed (node, channel) allocation, tracked per
// band so overlap checks never compare across bands.
type assignedRadio struct {
	node      string
	channel   int
	bandwidth mesh.Bandwidth
	maxEIRP   int
}

// Assigner runs the channel assignment pass of §4.4.
type Assigner struct {
	log *logger.Logger
}

// New returns an Assigner that logs milestones through log.
func New(log *logger.Logger) *Assigner {
	return &Assigner{log: log}
}

// Assign walks tree in BFS/level order and produces a Plan, or a
// *mesh.Error with kind ChannelAssignment if some (node, band) has no
// feasible channel at any bandwidth.
func (a *Assigner) Assign(tree *mesh.Tree, nodes map[string]mesh.Node, edges mesh.EdgeIndex, cfg mesh.Config) (mesh.Plan, error) {
	plan := make(mesh.Plan, len(tree.Nodes))
	assignedByBand := map[mesh.Band][]assignedRadio{
		mesh.BandHigh: nil,
		mesh.BandLow:  nil,
	}
	radiosByNodeBand := map[string]map[mesh.Band]assignedRadio{}

	for _, id := range tree.BFSOrder() {
		tn := tree.Nodes[id]
		entry := mesh.PlanEntry{Level: tn.Level}
		if tn.HasParent {
			entry.Parent = tn.Parent
			entry.HasParent = true
		}
		if tn.HasBackhaul {
			entry.BackhaulBand = tn.BackhaulBand
			entry.HasBackhaul = true
		}

		radiosByNodeBand[id] = map[mesh.Band]assignedRadio{}

		for _, band := range bandsFor(tree, tn) {
			var radio assignedRadio
			if inherited, ok := inheritedRadio(tree, tn, band, radiosByNodeBand); ok {
				r, err := acceptInherited(id, band, inherited, nodes[id])
				if err != nil {
					return nil, err
				}
				radio = r
			} else {
				r, err := search(id, band, nodes, edges, cfg, assignedByBand[band])
				if err != nil {
					return nil, err
				}
				radio = r
			}

			assignedByBand[band] = append(assignedByBand[band], radio)
			radiosByNodeBand[id][band] = radio
			entry.Channel = append(entry.Channel, radio.channel)
			entry.Bandwidth = append(entry.Bandwidth, int(radio.bandwidth))
			entry.MaxEirp = append(entry.MaxEirp, radio.maxEIRP)
		}

		plan[id] = entry
		if a.log != nil {
			a.log.ChannelAssigned(id, tn.Level, entry.Channel)
		}
	}

	return plan, nil
}

// bandsFor returns, in HIGH-then-LOW order, the bands a node must
// operate: both bands for the root and every internal non-root node,
// only the backhaul band for a leaf (§4.4's "which bands a node
// operates", resolving the leaf Open Question as documented).
func bandsFor(tree *mesh.Tree, tn *mesh.TreeNode) []mesh.Band {
	if tree.IsLeaf(tn.ID) && tn.HasBackhaul {
		return []mesh.Band{tn.BackhaulBand}
	}
	return mesh.Bands[:]
}

// inheritedRadio returns the parent's radio on band when band is this
// node's backhaul band and the parent has already been assigned on it
// (BFS order guarantees it has, by the time a child is processed).
// Children's radios are never consulted.
func inheritedRadio(tree *mesh.Tree, tn *mesh.TreeNode, band mesh.Band, radiosByNodeBand map[string]map[mesh.Band]assignedRadio) (assignedRadio, bool) {
	if tn.HasBackhaul && tn.BackhaulBand == band && tn.HasParent {
		if r, ok := radiosByNodeBand[tn.Parent][band]; ok {
			return r, true
		}
	}
	return assignedRadio{}, false
}

// acceptInherited verifies the inherited (channel, bandwidth) triple is
// actually present in this node's own capability table (P5) before
// reusing it.
func acceptInherited(nodeID string, band mesh.Band, inherited assignedRadio, node mesh.Node) (assignedRadio, *mesh.Error) {
	for _, opt := range node.Capabilities.Options(band, inherited.bandwidth) {
		if opt.Centre == inherited.channel {
			return assignedRadio{node: nodeID, channel: opt.Centre, bandwidth: inherited.bandwidth, maxEIRP: opt.MaxEIRP}, nil
		}
	}
	return assignedRadio{}, mesh.NewChannelAssignmentError(nodeID, band, []mesh.ChannelAttempt{{
		Bandwidth: int(inherited.bandwidth),
		Channel:   inherited.channel,
	}})
}

// search performs the independent channel search of §4.4: descending
// bandwidth, in-table channel order, first candidate that clears every
// already-assigned node's interference check.
func search(nodeID string, band mesh.Band, nodes map[string]mesh.Node, edges mesh.EdgeIndex, cfg mesh.Config, assigned []assignedRadio) (assignedRadio, *mesh.Error) {
	node := nodes[nodeID]
	var attempted []mesh.ChannelAttempt

	for _, bw := range mesh.DescendingBandwidths {
		for _, opt := range node.Capabilities.Options(band, bw) {
			conflicts := conflictingNodes(nodeID, band, opt.Centre, bw, edges, cfg, assigned)
			if len(conflicts) == 0 {
				return assignedRadio{node: nodeID, channel: opt.Centre, bandwidth: bw, maxEIRP: opt.MaxEIRP}, nil
			}
			attempted = append(attempted, mesh.ChannelAttempt{
				Bandwidth:   int(bw),
				Channel:     opt.Centre,
				Conflicting: conflicts,
			})
		}
	}

	return assignedRadio{}, mesh.NewChannelAssignmentError(nodeID, band, attempted)
}

// conflictingNodes returns the sorted IDs of already-assigned nodes that
// make (channel, bw) infeasible for nodeID on band: their allocation
// overlaps in frequency and the RSSI between the two is not worse than
// the reuse floor.
func conflictingNodes(nodeID string, band mesh.Band, channel int, bw mesh.Bandwidth, edges mesh.EdgeIndex, cfg mesh.Config, assigned []assignedRadio) []string {
	var conflicts []string
	for _, other := range assigned {
		if other.node == nodeID {
			continue
		}
		if !overlaps(channel, bw, other.channel, other.bandwidth) {
			continue
		}
		rssi, ok := edges.RSSI(nodeID, other.node, band)
		if !ok {
			continue // no measurement: assume reuse is safe
		}
		if rssi < cfg.RSSIConflictThreshold {
			continue // far enough apart to reuse
		}
		conflicts = append(conflicts, other.node)
	}
	sort.Strings(conflicts)
	return conflicts
}

// overlaps reports whether two channels' [centre ± width/2] intervals
// intersect.
func overlaps(c1 int, bw1 mesh.Bandwidth, c2 int, bw2 mesh.Bandwidth) bool {
	lo1, hi1 := c1-int(bw1)/2, c1+int(bw1)/2
	lo2, hi2 := c2-int(bw2)/2, c2+int(bw2)/2
	return lo1 < hi2 && lo2 < hi1
}
