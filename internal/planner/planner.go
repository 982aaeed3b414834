// Package planner implements the driver operation of §4.5: validate,
// build the tree, assign channels, and materialise the output record.
// Plan is a pure function of its input; it holds no state across calls
// and may run concurrently with any other call on a separate goroutine.
package planner

import (
	"github.com/google/uuid"

	"github.com/Jazzy96/topo-planner/internal/channel"
	"github.com/Jazzy96/topo-planner/internal/domain/mesh"
	"github.com/Jazzy96/topo-planner/internal/topology"
	"github.com/Jazzy96/topo-planner/pkg/grouping"
	"github.com/Jazzy96/topo-planner/pkg/logger"
)

// Plan runs the full pipeline over a validated-at-the-boundary input
// record and returns the resulting Plan, or the first *mesh.Error
// encountered. log may be nil to run silently.
func Plan(input mesh.Input, log *logger.Logger) (mesh.Plan, error) {
	runID := uuid.NewString()
	rlog := log
	if rlog != nil {
		rlog = rlog.WithRun(runID)
	}

	if rlog != nil {
		rlog.PlanStart(len(input.Nodes), input.Edges.Len())
	}

	if verr := mesh.Validate(input); verr != nil {
		if rlog != nil {
			rlog.PlanFailed(string(verr.Kind), verr)
		}
		return nil, verr
	}

	tree, err := topology.New(rlog).Build(input.Nodes, input.Edges, input.Config)
	if err != nil {
		logFailure(rlog, err)
		return nil, err
	}

	plan, err := channel.New(rlog).Assign(tree, input.Nodes, input.Edges, input.Config)
	if err != nil {
		logFailure(rlog, err)
		return nil, err
	}

	if rlog != nil {
		rlog.PlanSucceeded(len(plan))
		logSummary(rlog, tree)
	}

	return plan, nil
}

// logFailure reports a planning error with its kind, falling back to a
// generic label if err is not a *mesh.Error (it always is, but callers
// outside this package are not guaranteed to keep that true).
func logFailure(log *logger.Logger, err error) {
	if log == nil {
		return
	}
	kind, ok := mesh.KindOf(err)
	if !ok {
		kind = "Unknown"
	}
	log.PlanFailed(string(kind), err)
}

// namingSchemeMinGroupSize is the smallest cluster worth calling out when
// grouping node IDs by naming scheme; below this a shared prefix is more
// likely coincidence than a deployment convention (e.g. "ap-floor1-*").
const namingSchemeMinGroupSize = 3

// logSummary emits a level-distribution, backhaul-band-distribution, and
// naming-scheme digest for the completed tree, grouping node IDs the way
// a topology summary groups devices for an operator dashboard.
func logSummary(log *logger.Logger, tree *mesh.Tree) {
	levels := make(map[string]int, len(tree.Nodes))
	bands := make(map[string]string, len(tree.Nodes))
	ids := make([]string, 0, len(tree.Nodes))
	for id, n := range tree.Nodes {
		levels[id] = n.Level
		if n.HasBackhaul {
			bands[id] = n.BackhaulBand.String()
		} else {
			bands[id] = "ROOT"
		}
		ids = append(ids, id)
	}

	for _, g := range grouping.GroupByLevel(levels) {
		log.Debug("tree level group", "prefix", g.Prefix, "count", g.Count)
	}
	for _, g := range grouping.GroupByBand(bands) {
		log.Debug("backhaul band group", "prefix", g.Prefix, "count", g.Count)
	}
	for _, g := range grouping.GroupByLongestCommonPrefix(ids, namingSchemeMinGroupSize) {
		log.Debug("naming scheme group", "prefix", g.Prefix, "count", g.Count)
	}
}
