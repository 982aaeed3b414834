package mesh

import "fmt"

// Validate re-checks the semantic invariants the generator relies on
// (§4.1). Structural shape (JSON decoding) is assumed to have already
// succeeded; this only re-checks what the core itself depends on.
func Validate(in Input) *Error {
	if len(in.Nodes) == 0 {
		return NewInvalidInputError("nodes", nil, "at least one node is required")
	}

	for _, e := range in.Edges.All() {
		if _, ok := in.Nodes[e.A]; !ok {
			return NewInvalidInputError("edges", e.A, "edge endpoint must be a known node ID")
		}
		if _, ok := in.Nodes[e.B]; !ok {
			return NewInvalidInputError("edges", e.B, "edge endpoint must be a known node ID")
		}
	}

	for id, n := range in.Nodes {
		if !n.Capabilities.HasAnyEntry() {
			return NewInvalidInputError(fmt.Sprintf("nodes.%s.channels", id), nil,
				"capability table must contain at least one (band, bandwidth, channel) entry")
		}
		if !n.GPS.Finite() {
			return NewInvalidInputError(fmt.Sprintf("nodes.%s.gps", id), [2]float64{n.GPS.Lat, n.GPS.Lon},
				"GPS coordinates must be finite")
		}
	}

	return nil
}
