// Package meshio converts between the §6 wire document shapes and the
// in-memory mesh model. This is I/O-boundary plumbing, not core logic:
// the core planner never imports this package.
package meshio

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Jazzy96/topo-planner/internal/domain/mesh"
)

// nodeWire is the §6 wire shape of a single node.
type nodeWire struct {
	GPS      [2]float64                  `json:"gps"`
	Load     float64                     `json:"load"`
	Channels map[string]map[string][]int `json:"channels"`
	MaxEirp  map[string]map[string][]int `json:"maxEirp"`
}

// edgeWire is the §6 wire shape of a single edge.
type edgeWire struct {
	RSSIHigh [2]int `json:"rssi_6gh"`
	RSSILow  [2]int `json:"rssi_6gl"`
}

// InputDocument is the full §6 input record.
type InputDocument struct {
	Nodes  map[string]nodeWire  `json:"nodes"`
	Edges  map[string]edgeWire  `json:"edges"`
	Config mesh.ConfigOverrides `json:"config"`
}

// DecodeInput parses a §6 input record.
func DecodeInput(data []byte) (InputDocument, error) {
	var doc InputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return InputDocument{}, fmt.Errorf("decode input document: %w", err)
	}
	return doc, nil
}

// ToModel converts the wire document into a validated-at-the-boundary
// mesh.Input, using the document's own inline config with no base
// overrides layered beneath it.
func (d InputDocument) ToModel() (mesh.Input, *mesh.Error) {
	return d.ToModelWithBase(nil)
}

// ToModelWithBase converts the wire document into a validated-at-the-
// boundary mesh.Input. base is a lower-precedence override layer (e.g. a
// config file supplied once per process); the document's own inline
// config always wins over it. It performs the structural conversion
// only; §4.1's semantic re-checks happen in mesh.Validate, downstream.
func (d InputDocument) ToModelWithBase(base *mesh.ConfigOverrides) (mesh.Input, *mesh.Error) {
	nodes := make(map[string]mesh.Node, len(d.Nodes))
	for id, nw := range d.Nodes {
		caps, err := decodeCapabilities(id, nw)
		if err != nil {
			return mesh.Input{}, err
		}
		nodes[id] = mesh.Node{
			ID:           id,
			GPS:          mesh.GPS{Lat: nw.GPS[0], Lon: nw.GPS[1]},
			Load:         nw.Load,
			Capabilities: caps,
		}
	}

	known := make(map[string]bool, len(nodes))
	for id := range nodes {
		known[id] = true
	}

	edges := make([]mesh.Edge, 0, len(d.Edges))
	keys := make([]string, 0, len(d.Edges))
	for key := range d.Edges {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		a, b, ok := splitEdgeKey(key, known)
		if !ok {
			return mesh.Input{}, mesh.NewInvalidInputError("edges", key,
				"edge key must be '<id1>_<id2>' where both IDs are known nodes")
		}
		ew := d.Edges[key]
		edges = append(edges, mesh.Edge{
			A: a,
			B: b,
			RSSI: map[mesh.Band][2]int{
				mesh.BandHigh: ew.RSSIHigh,
				mesh.BandLow:  ew.RSSILow,
			},
		})
	}

	return mesh.Input{
		Nodes:  nodes,
		Edges:  mesh.NewEdgeIndex(edges),
		Config: base.Merge(&d.Config).Resolve(),
	}, nil
}

// splitEdgeKey recovers (id1, id2) from a "<id1>_<id2>" key. IDs may
// themselves contain underscores, so every underscore position is tried
// until both halves resolve to known node IDs.
func splitEdgeKey(key string, known map[string]bool) (string, string, bool) {
	for i := 0; i < len(key); i++ {
		if key[i] != '_' {
			continue
		}
		a, b := key[:i], key[i+1:]
		if known[a] && known[b] {
			return a, b, true
		}
	}
	return "", "", false
}

// decodeCapabilities zips a node's parallel "channels"/"maxEirp" wire
// maps into the internal CapabilityTable.
func decodeCapabilities(nodeID string, nw nodeWire) (mesh.CapabilityTable, *mesh.Error) {
	table := make(mesh.CapabilityTable)
	for bandKey, byBW := range nw.Channels {
		band, ok := mesh.ParseWireBand(bandKey)
		if !ok {
			return nil, mesh.NewInvalidInputError(fmt.Sprintf("nodes.%s.channels", nodeID), bandKey,
				"band must be '6GH' or '6GL'")
		}
		for bwKey, centres := range byBW {
			bw, ok := mesh.ParseWireBandwidth(bwKey)
			if !ok {
				return nil, mesh.NewInvalidInputError(fmt.Sprintf("nodes.%s.channels.%s", nodeID, bandKey), bwKey,
					"bandwidth must be one of 20M, 40M, 80M, 160M")
			}
			eirps := nw.MaxEirp[bandKey][bwKey]
			if len(eirps) != len(centres) {
				return nil, mesh.NewInvalidInputError(fmt.Sprintf("nodes.%s.maxEirp.%s.%s", nodeID, bandKey, bwKey), eirps,
					"maxEirp must have one entry per channel centre")
			}
			opts := make([]mesh.ChannelOption, len(centres))
			for i, c := range centres {
				opts[i] = mesh.ChannelOption{Centre: c, MaxEIRP: eirps[i]}
			}
			if table[band] == nil {
				table[band] = make(map[mesh.Bandwidth][]mesh.ChannelOption)
			}
			table[band][bw] = opts
		}
	}
	return table, nil
}

// EncodePlan renders a Plan as the §6 output record.
func EncodePlan(plan mesh.Plan) ([]byte, error) {
	return json.Marshal(plan)
}

// errorDocument is the §6 error record shape.
type errorDocument struct {
	Status  string         `json:"status"`
	Kind    mesh.ErrorKind `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// EncodeError renders a *mesh.Error as the §6 error record.
func EncodeError(err *mesh.Error) ([]byte, error) {
	return json.Marshal(errorDocument{
		Status:  "error",
		Kind:    err.Kind,
		Message: err.Message,
		Details: err.Details,
	})
}
