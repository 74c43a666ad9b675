package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyRangeContains(t *testing.T) {
	outer := FrequencyRange{Min: 100, Max: 200}
	assert.True(t, outer.Contains(FrequencyRange{Min: 100, Max: 200}))
	assert.True(t, outer.Contains(FrequencyRange{Min: 120, Max: 130}))
	assert.False(t, outer.Contains(FrequencyRange{Min: 99, Max: 130}))
	assert.False(t, outer.Contains(FrequencyRange{Min: 120, Max: 201}))
}

func TestSpwMapSelfMapped(t *testing.T) {
	m := SpwMap{
		Full:    []int{1, 1, 2, 3},
		Trimmed: []int{1, 1, 2},
		Windows: []CalibrationWindow{{CalSpwID: 1, MapsToSpw: []int{0, 1}}},
	}
	assert.Equal(t, 2, m.SelfMapped())
	assert.Equal(t, []int{1, 1, 2}, m.Selected(true))
	assert.Equal(t, []int{1, 1, 2, 3}, m.Selected(false))
}
