package core

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"casa-calmap/internal/types"
)

func TestCompressChannels(t *testing.T) {
	tests := []struct {
		name     string
		channels []int
		want     []types.ChannelRange
	}{
		{
			name:     "mixed runs",
			channels: []int{5, 6, 7, 10, 11, 20},
			want:     []types.ChannelRange{{Lo: 5, Hi: 7}, {Lo: 10, Hi: 11}, {Lo: 20, Hi: 20}},
		},
		{
			name:     "single channel",
			channels: []int{0},
			want:     []types.ChannelRange{{Lo: 0, Hi: 0}},
		},
		{
			name:     "unsorted with duplicates",
			channels: []int{11, 5, 7, 6, 20, 10, 6, 5},
			want:     []types.ChannelRange{{Lo: 5, Hi: 7}, {Lo: 10, Hi: 11}, {Lo: 20, Hi: 20}},
		},
		{
			name:     "gap of two splits",
			channels: []int{1, 3},
			want:     []types.ChannelRange{{Lo: 1, Hi: 1}, {Lo: 3, Hi: 3}},
		},
		{
			name:     "touching merges",
			channels: []int{3, 4},
			want:     []types.ChannelRange{{Lo: 3, Hi: 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompressChannels(tt.channels)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected ranges (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompressChannelsEmpty(t *testing.T) {
	_, err := CompressChannels(nil)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
}

func TestCompressChannelsDoesNotReorderInput(t *testing.T) {
	channels := []int{9, 1, 5}
	_, err := CompressChannels(channels)
	require.NoError(t, err)
	require.Equal(t, []int{9, 1, 5}, channels)
}

func TestCompressChannelsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		set := map[int]struct{}{}
		size := 1 + rng.Intn(40)
		for len(set) < size {
			set[rng.Intn(64)] = struct{}{}
		}
		channels := make([]int, 0, len(set))
		for channel := range set {
			channels = append(channels, channel)
		}

		ranges, err := CompressChannels(channels)
		require.NoError(t, err)

		var covered []int
		for i, r := range ranges {
			require.LessOrEqual(t, r.Lo, r.Hi)
			if i > 0 {
				// maximal merge leaves a real gap between ranges
				require.Greater(t, r.Lo, ranges[i-1].Hi+1)
			}
			for c := r.Lo; c <= r.Hi; c++ {
				_, ok := set[c]
				require.True(t, ok, "channel %d reported but not selected", c)
				covered = append(covered, c)
			}
		}
		sorted := slices.Clone(channels)
		slices.Sort(sorted)
		if diff := cmp.Diff(sorted, covered); diff != "" {
			t.Fatalf("ranges do not partition input (-want +got):\n%s", diff)
		}

		shuffled := append(slices.Clone(channels), channels[0], channels[len(channels)-1])
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		again, err := CompressChannels(shuffled)
		require.NoError(t, err)
		if diff := cmp.Diff(ranges, again); diff != "" {
			t.Fatalf("ranges depend on input order (-want +got):\n%s", diff)
		}
	}
}
