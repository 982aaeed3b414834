package mesh

import "math"

// GPS is a WGS-84 coordinate in degrees.
type GPS struct {
	Lat float64
	Lon float64
}

// Finite reports whether both components are finite, as required by the
// §4.1 validation contract.
func (g GPS) Finite() bool {
	return !math.IsNaN(g.Lat) && !math.IsInf(g.Lat, 0) &&
		!math.IsNaN(g.Lon) && !math.IsInf(g.Lon, 0)
}

// ChannelOption is one entry in a capability table cell: a channel centre
// and the max EIRP the node may radiate on it.
type ChannelOption struct {
	Centre  int
	MaxEIRP int
}

// CapabilityTable is the per-node menu of channels and EIRPs, keyed by
// band then bandwidth. A cell absent from the map means the node does not
// support that (band, bandwidth) pair.
type CapabilityTable map[Band]map[Bandwidth][]ChannelOption

// Options returns the channel options for (band, bw), or nil if unsupported.
func (c CapabilityTable) Options(band Band, bw Bandwidth) []ChannelOption {
	byBW, ok := c[band]
	if !ok {
		return nil
	}
	return byBW[bw]
}

// WidestShared returns the widest bandwidth present, with at least one
// channel option, in both capability tables for the given band. The second
// return value is false if the two tables share no usable bandwidth.
func WidestShared(a, b CapabilityTable, band Band) (Bandwidth, bool) {
	for _, bw := range DescendingBandwidths {
		if len(a.Options(band, bw)) > 0 && len(b.Options(band, bw)) > 0 {
			return bw, true
		}
	}
	return 0, false
}

// HasAnyEntry reports whether the table has at least one (band, bandwidth,
// channel) entry anywhere, the minimum the §4.1 validation contract asks
// of every node.
func (c CapabilityTable) HasAnyEntry() bool {
	for _, byBW := range c {
		for _, opts := range byBW {
			if len(opts) > 0 {
				return true
			}
		}
	}
	return false
}

// Node is a candidate mesh node: position, offered load, and the channels
// and powers it is capable of operating.
type Node struct {
	ID           string
	GPS          GPS
	Load         float64
	Capabilities CapabilityTable
}

// Edge is a bidirectional candidate link between two distinct nodes,
// carrying the directional RSSI measured in each band.
//
// RSSI[band][0] is the signal measured at B of a transmission from A
// (rssi[A→B]); RSSI[band][1] is rssi[B→A]. The pair (A, B) mirrors the
// order the edge's wire key was written in; it carries no other meaning.
type Edge struct {
	A, B string
	RSSI map[Band][2]int
}

// DirectedRSSI returns rssi[from→to] in the given band for this edge.
// ok is false if (from, to) are not this edge's endpoints in some order,
// or the band has no measurement.
func (e Edge) DirectedRSSI(from, to string, band Band) (int, bool) {
	pair, ok := e.RSSI[band]
	if !ok {
		return 0, false
	}
	switch {
	case from == e.A && to == e.B:
		return pair[0], true
	case from == e.B && to == e.A:
		return pair[1], true
	default:
		return 0, false
	}
}

// MinRSSI returns the weaker of the two directional measurements in band,
// the quantity the weight function and the RSSI threshold check both use.
func (e Edge) MinRSSI(band Band) (int, bool) {
	pair, ok := e.RSSI[band]
	if !ok {
		return 0, false
	}
	if pair[0] < pair[1] {
		return pair[0], true
	}
	return pair[1], true
}

// Other returns the endpoint of e that is not id, and whether id is one
// of e's two endpoints at all.
func (e Edge) Other(id string) (string, bool) {
	switch id {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return "", false
	}
}
