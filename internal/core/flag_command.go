package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"casa-calmap/internal/ports"
	"casa-calmap/internal/types"
)

// flagTimeHalfWidth is half the width of the timerange written for a
// flagged time sample.
const flagTimeHalfWidth = 0.5

type clause struct {
	key   types.ClauseKey
	value string
}

func (c clause) render() string {
	return fmt.Sprintf("%s='%s'", c.key, c.value)
}

// FlagCommandComposer turns flagging coordinates into flag commands.
type FlagCommandComposer struct {
	formatter ports.TimeFormatterPort
}

func NewFlagCommandComposer(formatter ports.TimeFormatterPort) FlagCommandComposer {
	return FlagCommandComposer{formatter: formatter}
}

// Compose resolves antenna and time from axis coordinates, compresses
// flagged channels, and renders the selection expression. Absent fields
// produce no clause; reason is always written.
func (c FlagCommandComposer) Compose(spec types.FlagCommandSpec) types.FlagCommand {
	cmd := types.FlagCommand{
		Filename:     spec.Filename,
		Rule:         spec.Rule,
		RuleAxis:     spec.RuleAxis,
		Intent:       spec.Intent,
		Spw:          spec.Spw,
		Antenna:      spec.Antenna,
		FlagTime:     spec.Time,
		Polarization: spec.Polarization,
		ChannelAxis:  spec.ChannelAxis,
		Reason:       spec.Reason,
		ExtendFields: spec.ExtendFields,
	}
	if len(spec.AxisNames) > 0 && len(spec.FlagCoordinates) > 0 {
		for i, name := range spec.AxisNames {
			if i >= len(spec.FlagCoordinates) {
				break
			}
			switch strings.ToUpper(name) {
			case types.AxisAntenna1:
				cmd.Antenna = formatCoordinate(spec.FlagCoordinates[i])
			case types.AxisTime:
				flagTime := spec.FlagCoordinates[i]
				cmd.FlagTime = &flagTime
			}
		}
	}
	if len(spec.FlagChannels) > 0 {
		cmd.Channels = append([]int(nil), spec.FlagChannels...)
		// non-empty input cannot fail
		cmd.ChannelRanges, _ = CompressChannels(spec.FlagChannels)
	}
	cmd.Command = c.render(cmd)
	return cmd
}

func (c FlagCommandComposer) render(cmd types.FlagCommand) string {
	var clauses []clause
	if cmd.Intent != "" {
		clauses = append(clauses, clause{types.ClauseIntent, intentPattern(cmd.Intent)})
	}
	spw := cmd.Spw
	if len(cmd.ChannelRanges) > 0 {
		if spw == "" {
			spw = "*"
		}
		spw = spw + ":" + renderChannelRanges(cmd.ChannelRanges, cmd.ChannelAxis)
	}
	if spw != "" {
		clauses = append(clauses, clause{types.ClauseSpw, spw})
	}
	if cmd.Polarization != "" {
		clauses = append(clauses, clause{types.ClauseCorrelation, cmd.Polarization})
	}
	clauses = append(clauses, clause{types.ClauseReason, cmd.Reason})
	if cmd.Antenna != "" {
		clauses = append(clauses, clause{types.ClauseAntenna, cmd.Antenna})
	}
	if cmd.FlagTime != nil {
		start := c.calendar(*cmd.FlagTime - flagTimeHalfWidth)
		end := c.calendar(*cmd.FlagTime + flagTimeHalfWidth)
		clauses = append(clauses, clause{types.ClauseTimerange, start + "~" + end})
	}

	rendered := make([]string, 0, len(clauses))
	for _, cl := range clauses {
		rendered = append(rendered, cl.render())
	}
	command := strings.TrimSpace(strings.Join(rendered, " "))
	if len(cmd.ExtendFields) > 0 {
		command = stripExtendFields(command, cmd.ExtendFields)
	}
	return command
}

func (c FlagCommandComposer) calendar(seconds float64) string {
	if c.formatter == nil {
		return strconv.FormatFloat(seconds, 'f', -1, 64)
	}
	return c.formatter.ToCalendarString(seconds, types.TimeUnitSeconds)
}

// stripExtendFields removes every whitespace-separated token containing
// one of fields. Tokens are not quote-aware: a quoted value containing a
// space is split, and a value containing a field name is removed too.
func stripExtendFields(command string, fields []string) string {
	tokens := strings.Fields(command)
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if containsAny(token, fields) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func containsAny(token string, fields []string) bool {
	for _, field := range fields {
		if field != "" && strings.Contains(token, field) {
			return true
		}
	}
	return false
}

func intentPattern(intent string) string {
	if strings.Contains(intent, "*") {
		return intent
	}
	return "*" + intent + "*"
}

func renderChannelRanges(ranges []types.ChannelRange, axis *types.ChannelAxis) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, renderChannelRange(r, axis))
	}
	return strings.Join(parts, ";")
}

func renderChannelRange(r types.ChannelRange, axis *types.ChannelAxis) string {
	if axis == nil || r.Lo < 0 || r.Hi >= len(axis.Data) {
		return fmt.Sprintf("%d~%d", r.Lo, r.Hi)
	}
	half := axis.ChannelWidth / 2.0
	lo := axis.Data[r.Lo] - half
	hi := axis.Data[r.Hi] + half
	return formatFloat(lo) + axis.Units + "~" + formatFloat(hi) + axis.Units
}

func formatCoordinate(value float64) string {
	if value == math.Trunc(value) && math.Abs(value) < 1e15 {
		return strconv.FormatInt(int64(value), 10)
	}
	return formatFloat(value)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
