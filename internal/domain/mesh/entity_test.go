package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPS_Finite(t *testing.T) {
	assert.True(t, GPS{Lat: 37.5, Lon: -122.3}.Finite())
	assert.False(t, GPS{Lat: math.NaN(), Lon: 0}.Finite())
	assert.False(t, GPS{Lat: 0, Lon: math.Inf(1)}.Finite())
}

func TestCapabilityTable_Options(t *testing.T) {
	table := CapabilityTable{
		BandHigh: {
			Bandwidth80: []ChannelOption{{Centre: 39, MaxEIRP: 24}},
		},
	}
	assert.Equal(t, []ChannelOption{{Centre: 39, MaxEIRP: 24}}, table.Options(BandHigh, Bandwidth80))
	assert.Nil(t, table.Options(BandHigh, Bandwidth160))
	assert.Nil(t, table.Options(BandLow, Bandwidth80))
}

func TestCapabilityTable_HasAnyEntry(t *testing.T) {
	assert.False(t, CapabilityTable{}.HasAnyEntry())
	assert.False(t, CapabilityTable{BandHigh: {}}.HasAnyEntry())
	assert.False(t, CapabilityTable{BandHigh: {Bandwidth80: nil}}.HasAnyEntry())
	assert.True(t, CapabilityTable{BandHigh: {Bandwidth80: []ChannelOption{{Centre: 39}}}}.HasAnyEntry())
}

func TestWidestShared(t *testing.T) {
	a := CapabilityTable{
		BandHigh: {
			Bandwidth160: []ChannelOption{{Centre: 31}},
			Bandwidth80:  []ChannelOption{{Centre: 39}},
		},
	}
	b := CapabilityTable{
		BandHigh: {
			Bandwidth80: []ChannelOption{{Centre: 39}},
			Bandwidth40: []ChannelOption{{Centre: 43}},
		},
	}

	bw, ok := WidestShared(a, b, BandHigh)
	assert.True(t, ok)
	assert.Equal(t, Bandwidth80, bw)

	_, ok = WidestShared(a, b, BandLow)
	assert.False(t, ok)
}

func TestEdge_DirectedAndMinRSSI(t *testing.T) {
	e := Edge{
		A: "n1", B: "n2",
		RSSI: map[Band][2]int{BandHigh: {-60, -65}},
	}

	rssi, ok := e.DirectedRSSI("n1", "n2", BandHigh)
	assert.True(t, ok)
	assert.Equal(t, -60, rssi)

	rssi, ok = e.DirectedRSSI("n2", "n1", BandHigh)
	assert.True(t, ok)
	assert.Equal(t, -65, rssi)

	_, ok = e.DirectedRSSI("n1", "n3", BandHigh)
	assert.False(t, ok)

	_, ok = e.DirectedRSSI("n1", "n2", BandLow)
	assert.False(t, ok)

	min, ok := e.MinRSSI(BandHigh)
	assert.True(t, ok)
	assert.Equal(t, -65, min)
}

func TestEdge_Other(t *testing.T) {
	e := Edge{A: "n1", B: "n2"}
	other, ok := e.Other("n1")
	assert.True(t, ok)
	assert.Equal(t, "n2", other)

	other, ok = e.Other("n2")
	assert.True(t, ok)
	assert.Equal(t, "n1", other)

	_, ok = e.Other("n3")
	assert.False(t, ok)
}
