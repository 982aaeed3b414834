// Package weight implements the planner's WeightFunction (§4.2): a pure
// scoring of a (parent, child, band) attachment candidate.
package weight

import (
	"math"

	"github.com/Jazzy96/topo-planner/internal/domain/mesh"
)

// noiseFloorDBm is the fixed noise floor the throughput term's SNR is
// computed against. Its exact value is not externally observable, only
// the term's monotonicity in RSSI and bandwidth (§4.2).
const noiseFloorDBm = -95.0

// Candidate names a single attachment the weight function scores:
// attaching child to parent over band.
type Candidate struct {
	Parent string
	Child  string
	Band   mesh.Band
}

// Evaluate scores a candidate. It returns math.Inf(-1) whenever the
// candidate is ineligible for any of the reasons §4.2 lists: RSSI worse
// than the threshold, no shared bandwidth, or a degree/hop violation.
func Evaluate(c Candidate, nodes map[string]mesh.Node, edges mesh.EdgeIndex, tree *mesh.Tree, cfg mesh.Config) float64 {
	ineligible := math.Inf(-1)

	parentNode, ok := tree.Nodes[c.Parent]
	if !ok {
		return ineligible
	}
	if parentNode.Degree() >= cfg.MaxDegree {
		return ineligible
	}
	level := parentNode.Level + 1
	if level > cfg.MaxHop {
		return ineligible
	}

	edge, ok := edges.Get(c.Parent, c.Child)
	if !ok {
		return ineligible
	}
	minRSSI, ok := edge.MinRSSI(c.Band)
	if !ok || minRSSI < cfg.RSSIThreshold {
		return ineligible
	}

	parent, okP := nodes[c.Parent]
	child, okC := nodes[c.Child]
	if !okP || !okC {
		return ineligible
	}
	bw, ok := mesh.WidestShared(parent.Capabilities, child.Capabilities, c.Band)
	if !ok {
		return ineligible
	}

	throughput := throughputTerm(minRSSI, bw)
	loadTerm := tree.SubtreeLoad(c.Parent) + child.Load
	hopTerm := float64(level)

	return cfg.ThroughputWeight*throughput - cfg.LoadWeight*loadTerm + cfg.HopWeight*hopTerm
}

// throughputTerm is a Shannon-like log-capacity mapping from SNR: a
// monotonic increasing function of RSSI and of bandwidth, which is all
// §4.2 requires of it.
func throughputTerm(rssi int, bw mesh.Bandwidth) float64 {
	snrDB := float64(rssi) - noiseFloorDBm
	snrLinear := math.Pow(10, snrDB/10)
	return float64(bw) * math.Log2(1+snrLinear)
}
