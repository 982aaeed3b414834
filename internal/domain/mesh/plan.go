package mesh

import "encoding/json"

// PlanEntry is one node's row in the output record: its position in the
// tree plus the parallel (channel, bandwidth, maxEirp) sequences, one
// entry per operating radio.
type PlanEntry struct {
	Parent       string
	HasParent    bool
	BackhaulBand Band
	HasBackhaul  bool
	Level        int
	Channel      []int
	Bandwidth    []int
	MaxEirp      []int
}

// planEntryWire is the JSON shape of §6's output record for a single node.
type planEntryWire struct {
	Parent       *string `json:"parent"`
	BackhaulBand *string `json:"backhaulBand"`
	Level        int     `json:"level"`
	Channel      []int   `json:"channel"`
	Bandwidth    []int   `json:"bandwidth"`
	MaxEirp      []int   `json:"maxEirp"`
}

// MarshalJSON renders the entry in the exact shape §6 documents: null
// parent/backhaulBand for the root, parallel arrays otherwise.
func (e PlanEntry) MarshalJSON() ([]byte, error) {
	w := planEntryWire{
		Level:     e.Level,
		Channel:   e.Channel,
		Bandwidth: e.Bandwidth,
		MaxEirp:   e.MaxEirp,
	}
	if e.HasParent {
		w.Parent = &e.Parent
	}
	if e.HasBackhaul {
		code := e.BackhaulBand.OutputCode()
		w.BackhaulBand = &code
	}
	return json.Marshal(w)
}

// Plan is the planner's deliverable: one PlanEntry per input node.
// Marshaling a Plan yields the §6 output record; Go's encoding/json
// sorts map[string]T keys, which is what gives the output its
// deterministic, round-trippable key order.
type Plan map[string]PlanEntry
