package app

import "casa-calmap/internal/types"

type SpwMapRequest struct {
	Vis       string
	CalTable  string
	Trim      bool
	Tolerance float64
	Output    string
}

type SpwMapResult struct {
	SpwMap     []int
	Full       []int
	Windows    []types.CalibrationWindow
	SelfMapped int
	OutputPath string
}

type FlagCommandsRequest struct {
	RequestPath string
	Output      string
	Consolidate bool
}

type FlagCommandsResult struct {
	Commands   []types.FlagCommand
	OutputPath string
}

type ChannelRangesRequest struct {
	Channels []int
}

type ChannelRangesResult struct {
	Ranges []types.ChannelRange
}

type MatchRequest struct {
	RequestPath string
	RecordsPath string
}

// MatchEntry pairs a composed command with the records it selects, by
// index into the records file.
type MatchEntry struct {
	Command string
	Spectra []int
	Images  []int
}

type MatchResult struct {
	Entries []MatchEntry
}
