package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casa-calmap/internal/types"
)

func TestConsolidateChannels(t *testing.T) {
	composer := NewFlagCommandComposer(nil)
	specs := []types.FlagCommandSpec{
		{Filename: "a.tbl", Spw: "3", Reason: "bad data"},
		{Filename: "a.tbl", Spw: "19", Antenna: "DV04", FlagChannels: []int{5, 6, 7, 10, 11, 20}, Reason: "sharps"},
		{Filename: "a.tbl", Spw: "21", FlagChannels: []int{1}, Reason: "sharps"},
		{Filename: "a.tbl", Spw: "19", Antenna: "DV04", FlagChannels: []int{8, 9}, Reason: "sharps"},
		{Filename: "a.tbl", Spw: "21", FlagChannels: []int{2, 3}, Reason: "sharps"},
	}
	cmds := make([]types.FlagCommand, 0, len(specs))
	for _, spec := range specs {
		cmds = append(cmds, composer.Compose(spec))
	}

	merged := composer.ConsolidateChannels(cmds)

	got := make([]string, 0, len(merged))
	for _, cmd := range merged {
		got = append(got, cmd.Command)
	}
	want := []string{
		"spw='3' reason='bad data'",
		"spw='19:5~11;20~20' reason='sharps' antenna='DV04'",
		"spw='21:1~3' reason='sharps'",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected commands (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{5, 6, 7, 10, 11, 20, 8, 9}, merged[1].Channels)
}

func TestConsolidateChannelsKeepsDistinctSelections(t *testing.T) {
	composer := NewFlagCommandComposer(nil)
	cmds := []types.FlagCommand{
		composer.Compose(types.FlagCommandSpec{Filename: "a", Spw: "1", FlagChannels: []int{1}, Reason: "x"}),
		composer.Compose(types.FlagCommandSpec{Filename: "b", Spw: "1", FlagChannels: []int{2}, Reason: "x"}),
		composer.Compose(types.FlagCommandSpec{Filename: "a", Spw: "1", FlagChannels: []int{3}, Reason: "y"}),
		composer.Compose(types.FlagCommandSpec{Filename: "a", Spw: "1", Time: floatPtr(1), FlagChannels: []int{4}, Reason: "x"}),
		composer.Compose(types.FlagCommandSpec{
			Filename:     "a",
			Spw:          "1",
			FlagChannels: []int{5},
			ChannelAxis:  &types.ChannelAxis{Data: []float64{0, 1, 2, 3, 4, 5}, ChannelWidth: 1, Units: "GHz"},
			Reason:       "x",
		}),
	}

	merged := composer.ConsolidateChannels(cmds)

	require.Len(t, merged, len(cmds))
	for i := range cmds {
		assert.Equal(t, cmds[i].Command, merged[i].Command)
	}
}

func TestConsolidateChannelsEmpty(t *testing.T) {
	merged := NewFlagCommandComposer(nil).ConsolidateChannels(nil)
	assert.Empty(t, merged)
}
