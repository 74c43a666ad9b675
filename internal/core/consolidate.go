package core

import (
	"fmt"
	"strings"

	"casa-calmap/internal/types"
)

// ConsolidateChannels merges commands that differ only in their flagged
// channels. Each merged command takes the position of the first command
// in its group; commands without channels pass through unchanged.
func (c FlagCommandComposer) ConsolidateChannels(cmds []types.FlagCommand) []types.FlagCommand {
	type group struct {
		first    types.FlagCommand
		channels []int
		index    int
	}
	groups := map[string]*group{}
	out := make([]types.FlagCommand, 0, len(cmds))
	for _, cmd := range cmds {
		if len(cmd.Channels) == 0 {
			out = append(out, cmd)
			continue
		}
		key := selectionKey(cmd)
		if existing, ok := groups[key]; ok {
			existing.channels = append(existing.channels, cmd.Channels...)
			continue
		}
		groups[key] = &group{
			first:    cmd,
			channels: append([]int(nil), cmd.Channels...),
			index:    len(out),
		}
		out = append(out, cmd)
	}
	for _, g := range groups {
		out[g.index] = c.Compose(types.FlagCommandSpec{
			Filename:     g.first.Filename,
			Rule:         g.first.Rule,
			RuleAxis:     g.first.RuleAxis,
			Intent:       g.first.Intent,
			Spw:          g.first.Spw,
			Antenna:      g.first.Antenna,
			Time:         g.first.FlagTime,
			Polarization: g.first.Polarization,
			FlagChannels: g.channels,
			ChannelAxis:  g.first.ChannelAxis,
			Reason:       g.first.Reason,
			ExtendFields: g.first.ExtendFields,
		})
	}
	return out
}

func selectionKey(cmd types.FlagCommand) string {
	flagTime := "-"
	if cmd.FlagTime != nil {
		flagTime = formatFloat(*cmd.FlagTime)
	}
	return strings.Join([]string{
		cmd.Filename,
		cmd.Rule,
		cmd.RuleAxis,
		cmd.Intent,
		cmd.Spw,
		cmd.Antenna,
		flagTime,
		cmd.Polarization,
		cmd.Reason,
		strings.Join(cmd.ExtendFields, ","),
		axisKey(cmd.ChannelAxis),
	}, "\x00")
}

func axisKey(axis *types.ChannelAxis) string {
	if axis == nil {
		return "-"
	}
	return fmt.Sprintf("%s|%g|%v", axis.Units, axis.ChannelWidth, axis.Data)
}
