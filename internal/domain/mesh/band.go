// Package mesh holds the in-memory data model for the WiFi mesh topology
// planner: nodes, edges, configuration, and the derived tree and plan
// produced by a single planning call.
package mesh

// Band identifies one of the two frequency bands a mesh radio may operate
// in. There are exactly two: the closed set described in the planner's
// data model.
type Band int

const (
	// BandHigh is the "6GH" domain band.
	BandHigh Band = iota
	// BandLow is the "6GL" domain band.
	BandLow
)

// Bands lists both bands in the fixed order the planner always iterates
// them in (HIGH before LOW), so every traversal that touches both bands
// is deterministic without a second sort.
var Bands = [2]Band{BandHigh, BandLow}

// String renders the band's internal name, used in logs and error details.
func (b Band) String() string {
	switch b {
	case BandHigh:
		return "HIGH"
	case BandLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// WireKey returns the key used for this band in the input document's
// capability tables ("6GH" / "6GL").
func (b Band) WireKey() string {
	switch b {
	case BandHigh:
		return "6GH"
	case BandLow:
		return "6GL"
	default:
		return ""
	}
}

// OutputCode returns the single-letter code used for backhaulBand in the
// output record ("H" / "L").
func (b Band) OutputCode() string {
	switch b {
	case BandHigh:
		return "H"
	case BandLow:
		return "L"
	default:
		return ""
	}
}

// ParseWireBand maps an input document band key to a Band.
func ParseWireBand(key string) (Band, bool) {
	switch key {
	case "6GH":
		return BandHigh, true
	case "6GL":
		return BandLow, true
	default:
		return Band(-1), false
	}
}

// MarshalJSON renders the band using its output code, so a Band embedded
// directly in a response struct serialises the way §6 of the spec expects.
func (b Band) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.OutputCode() + `"`), nil
}

// Bandwidth is a channel width in MHz. Only four values are recognised.
type Bandwidth int

const (
	Bandwidth20  Bandwidth = 20
	Bandwidth40  Bandwidth = 40
	Bandwidth80  Bandwidth = 80
	Bandwidth160 Bandwidth = 160
)

// DescendingBandwidths is the order the channel assigner steps down
// through when the widest bandwidth is not feasible: 160 -> 80 -> 40 -> 20.
var DescendingBandwidths = [4]Bandwidth{Bandwidth160, Bandwidth80, Bandwidth40, Bandwidth20}

// WireKey returns the key used for this bandwidth in the input document
// ("20M", "40M", "80M", "160M").
func (bw Bandwidth) WireKey() string {
	switch bw {
	case Bandwidth20:
		return "20M"
	case Bandwidth40:
		return "40M"
	case Bandwidth80:
		return "80M"
	case Bandwidth160:
		return "160M"
	default:
		return ""
	}
}

// ParseWireBandwidth maps an input document bandwidth key to a Bandwidth.
func ParseWireBandwidth(key string) (Bandwidth, bool) {
	switch key {
	case "20M":
		return Bandwidth20, true
	case "40M":
		return Bandwidth40, true
	case "80M":
		return Bandwidth80, true
	case "160M":
		return Bandwidth160, true
	default:
		return 0, false
	}
}
