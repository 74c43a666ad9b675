package core

import (
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"casa-calmap/internal/types"
)

// CompressChannels groups channel indices into the minimal ordered list of
// closed ranges. Input order and duplicates do not affect the result;
// consecutive indices are merged, any larger gap starts a new range.
func CompressChannels(channels []int) ([]types.ChannelRange, error) {
	if len(channels) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("channel list is empty")
	}
	sorted := slices.Clone(channels)
	slices.Sort(sorted)

	current := types.ChannelRange{Lo: sorted[0], Hi: sorted[0]}
	var ranges []types.ChannelRange
	for _, channel := range sorted[1:] {
		if channel <= current.Hi+1 {
			current.Hi = channel
			continue
		}
		ranges = append(ranges, current)
		current = types.ChannelRange{Lo: channel, Hi: channel}
	}
	return append(ranges, current), nil
}
