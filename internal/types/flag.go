package types

import (
	"math"
	"slices"
	"strings"
)

// ChannelRange is a closed interval of channel indices.
type ChannelRange struct {
	Lo int `yaml:"lo"`
	Hi int `yaml:"hi"`
}

// ChannelAxis describes the physical spectral axis of the flagged data,
// used to express channel ranges in frequency units rather than indices.
type ChannelAxis struct {
	Data         []float64 `yaml:"data"`
	ChannelWidth float64   `yaml:"channel_width"`
	Units        string    `yaml:"units"`
}

// FlagCommandSpec holds the construction inputs of a flag command.
// Empty strings mean "not set".
type FlagCommandSpec struct {
	Filename        string       `yaml:"filename"`
	Rule            string       `yaml:"rule,omitempty"`
	RuleAxis        string       `yaml:"rule_axis,omitempty"`
	Intent          string       `yaml:"intent,omitempty"`
	Spw             string       `yaml:"spw,omitempty"`
	Antenna         string       `yaml:"antenna,omitempty"`
	Time            *float64     `yaml:"time,omitempty"`
	Polarization    string       `yaml:"polarization,omitempty"`
	AxisNames       []string     `yaml:"axis_names,omitempty"`
	FlagCoordinates []float64    `yaml:"flag_coordinates,omitempty"`
	FlagChannels    []int        `yaml:"flag_channels,omitempty"`
	ChannelAxis     *ChannelAxis `yaml:"channel_axis,omitempty"`
	Reason          string       `yaml:"reason,omitempty"`
	ExtendFields    []string     `yaml:"extend_fields,omitempty"`
}

// FlagCommand is a composed flagging selection together with the
// resolved fields it was built from.
type FlagCommand struct {
	Filename      string
	Rule          string
	RuleAxis      string
	Intent        string
	Spw           string
	Antenna       string
	FlagTime      *float64
	Polarization  string
	Channels      []int
	ChannelRanges []ChannelRange
	ChannelAxis   *ChannelAxis
	Reason        string
	ExtendFields  []string
	Command       string
}

// SpectrumRecord describes one per-row spectrum a flag command may apply to.
type SpectrumRecord struct {
	Filename     string   `yaml:"filename"`
	Spw          string   `yaml:"spw"`
	Antennas     []string `yaml:"antennas"`
	Time         float64  `yaml:"time"`
	Polarization string   `yaml:"polarization"`
}

// ImageRecord describes a flagging view image (for example antenna vs time).
type ImageRecord struct {
	Filename     string   `yaml:"filename"`
	Spw          string   `yaml:"spw"`
	Polarization string   `yaml:"polarization"`
	AxisNames    []string `yaml:"axis_names"`
}

// flagTimeTolerance is how close a spectrum timestamp must be to the
// flagged time, in seconds.
const flagTimeTolerance = 0.5

// MatchesSpectrum reports whether the command selects the spectrum. The
// filename must match; every other field matches anything when unset.
func (c FlagCommand) MatchesSpectrum(record SpectrumRecord) bool {
	if c.Filename != record.Filename {
		return false
	}
	if c.Spw != "" && c.Spw != record.Spw {
		return false
	}
	if c.Antenna != "" && (len(record.Antennas) == 0 || c.Antenna != record.Antennas[0]) {
		return false
	}
	if c.FlagTime != nil && math.Abs(*c.FlagTime-record.Time) >= flagTimeTolerance {
		return false
	}
	if c.Polarization != "" && c.Polarization != record.Polarization {
		return false
	}
	return true
}

// MatchesImage reports whether the command applies to a flagging view.
// Antenna and time only require the view to have such an axis.
func (c FlagCommand) MatchesImage(record ImageRecord) bool {
	if c.Filename != record.Filename {
		return false
	}
	if c.Spw != "" && c.Spw != record.Spw {
		return false
	}
	if c.Antenna != "" && !anyContains(record.AxisNames, AxisAntenna) {
		return false
	}
	if c.FlagTime != nil && !slices.Contains(record.AxisNames, AxisTime) {
		return false
	}
	if c.Polarization != "" && c.Polarization != record.Polarization {
		return false
	}
	return true
}

func anyContains(values []string, substr string) bool {
	for _, value := range values {
		if strings.Contains(value, substr) {
			return true
		}
	}
	return false
}
