package mesh

// Config holds the seven recognised planner options. Every field has a
// documented default (see DefaultConfig); a caller-supplied value is
// merged over those defaults, never replacing the whole set.
type Config struct {
	// MaxDegree is the max number of children an internal node may take.
	MaxDegree int
	// RSSIThreshold is the backhaul eligibility floor, in dBm. Edges worse
	// than this in the chosen band are ineligible for backhaul.
	RSSIThreshold int
	// MaxHop is the max tree depth from the root (root is level 0).
	MaxHop int
	// ThroughputWeight scales the modelled-throughput term of the weight
	// function.
	ThroughputWeight float64
	// LoadWeight scales the subtree-load penalty, which is subtracted from
	// the weight: with a positive coefficient (the default), larger
	// subtree load lowers weight.
	LoadWeight float64
	// HopWeight scales the hop-count penalty. Negative by default, so
	// deeper insertions reduce weight.
	HopWeight float64
	// RSSIConflictThreshold is the interference floor for channel reuse:
	// two nodes may share overlapping spectrum only when the RSSI between
	// them is worse than this value.
	RSSIConflictThreshold int
}

// DefaultConfig returns the planner's documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxDegree:             3,
		RSSIThreshold:         -72,
		MaxHop:                5,
		ThroughputWeight:      1.0,
		LoadWeight:            0.5,
		HopWeight:             -80.0,
		RSSIConflictThreshold: -85,
	}
}

// ConfigOverrides is the partial-configuration shape accepted at the I/O
// boundary: any subset of the seven options, with unset fields left nil
// so Resolve can tell "not specified" apart from "explicitly zero".
type ConfigOverrides struct {
	MaxDegree             *int     `json:"MAX_DEGREE,omitempty" yaml:"MAX_DEGREE,omitempty"`
	RSSIThreshold         *int     `json:"RSSI_THRESHOLD,omitempty" yaml:"RSSI_THRESHOLD,omitempty"`
	MaxHop                *int     `json:"MAX_HOP,omitempty" yaml:"MAX_HOP,omitempty"`
	ThroughputWeight      *float64 `json:"THROUGHPUT_WEIGHT,omitempty" yaml:"THROUGHPUT_WEIGHT,omitempty"`
	LoadWeight            *float64 `json:"LOAD_WEIGHT,omitempty" yaml:"LOAD_WEIGHT,omitempty"`
	HopWeight             *float64 `json:"HOP_WEIGHT,omitempty" yaml:"HOP_WEIGHT,omitempty"`
	RSSIConflictThreshold *int     `json:"RSSI_CONFLICT_THRESHOLD,omitempty" yaml:"RSSI_CONFLICT_THRESHOLD,omitempty"`
}

// Resolve overlays any non-nil fields of o onto the documented defaults.
// A nil receiver resolves to plain defaults.
func (o *ConfigOverrides) Resolve() Config {
	cfg := DefaultConfig()
	if o == nil {
		return cfg
	}
	if o.MaxDegree != nil {
		cfg.MaxDegree = *o.MaxDegree
	}
	if o.RSSIThreshold != nil {
		cfg.RSSIThreshold = *o.RSSIThreshold
	}
	if o.MaxHop != nil {
		cfg.MaxHop = *o.MaxHop
	}
	if o.ThroughputWeight != nil {
		cfg.ThroughputWeight = *o.ThroughputWeight
	}
	if o.LoadWeight != nil {
		cfg.LoadWeight = *o.LoadWeight
	}
	if o.HopWeight != nil {
		cfg.HopWeight = *o.HopWeight
	}
	if o.RSSIConflictThreshold != nil {
		cfg.RSSIConflictThreshold = *o.RSSIConflictThreshold
	}
	return cfg
}

// Merge returns a new ConfigOverrides with other's non-nil fields layered
// on top of o's. o is treated as the base (e.g. a config file read once
// per process) and other as the more specific layer (e.g. the config
// block embedded in a single input document). Either may be nil.
func (o *ConfigOverrides) Merge(other *ConfigOverrides) *ConfigOverrides {
	merged := ConfigOverrides{}
	if o != nil {
		merged = *o
	}
	if other == nil {
		return &merged
	}
	if other.MaxDegree != nil {
		merged.MaxDegree = other.MaxDegree
	}
	if other.RSSIThreshold != nil {
		merged.RSSIThreshold = other.RSSIThreshold
	}
	if other.MaxHop != nil {
		merged.MaxHop = other.MaxHop
	}
	if other.ThroughputWeight != nil {
		merged.ThroughputWeight = other.ThroughputWeight
	}
	if other.LoadWeight != nil {
		merged.LoadWeight = other.LoadWeight
	}
	if other.HopWeight != nil {
		merged.HopWeight = other.HopWeight
	}
	if other.RSSIConflictThreshold != nil {
		merged.RSSIConflictThreshold = other.RSSIConflictThreshold
	}
	return &merged
}
