package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"casa-calmap/internal/core"
	"casa-calmap/internal/types"
)

func (s Service) FlagCommands(ctx context.Context, req FlagCommandsRequest) (FlagCommandsResult, error) {
	cmds, err := s.composeRequest(req.RequestPath)
	if err != nil {
		return FlagCommandsResult{}, err
	}
	if req.Consolidate {
		before := len(cmds)
		cmds = core.NewFlagCommandComposer(s.TimeFormatter).ConsolidateChannels(cmds)
		log.Ctx(ctx).Debug().Int("before", before).Int("after", len(cmds)).Msg("flag commands consolidated")
	}
	if s.Metrics != nil {
		s.Metrics.FlagCommandsComposed(len(cmds))
	}

	result := FlagCommandsResult{Commands: cmds}
	if output := strings.TrimSpace(req.Output); output != "" {
		if err := s.FlagWriter.WriteFlagCommands(output, cmds); err != nil {
			return FlagCommandsResult{}, err
		}
		result.OutputPath = output
	}
	return result, nil
}

func (s Service) ChannelRanges(req ChannelRangesRequest) (ChannelRangesResult, error) {
	ranges, err := core.CompressChannels(req.Channels)
	if err != nil {
		return ChannelRangesResult{}, err
	}
	return ChannelRangesResult{Ranges: ranges}, nil
}

func (s Service) Match(ctx context.Context, req MatchRequest) (MatchResult, error) {
	cmds, err := s.composeRequest(req.RequestPath)
	if err != nil {
		return MatchResult{}, err
	}
	recordsPath := strings.TrimSpace(req.RecordsPath)
	if recordsPath == "" {
		return MatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("records path is required")
	}
	records, err := s.FlagRequests.LoadMatchRecords(recordsPath)
	if err != nil {
		return MatchResult{}, err
	}

	entries := make([]MatchEntry, 0, len(cmds))
	for _, cmd := range cmds {
		entry := MatchEntry{Command: cmd.Command}
		for i, spectrum := range records.Spectra {
			if cmd.MatchesSpectrum(spectrum) {
				entry.Spectra = append(entry.Spectra, i)
			}
		}
		for i, image := range records.Images {
			if cmd.MatchesImage(image) {
				entry.Images = append(entry.Images, i)
			}
		}
		entries = append(entries, entry)
	}
	log.Ctx(ctx).Debug().Int("commands", len(cmds)).Int("spectra", len(records.Spectra)).Int("images", len(records.Images)).Msg("match completed")
	return MatchResult{Entries: entries}, nil
}

func (s Service) composeRequest(path string) ([]types.FlagCommand, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("flag request path is required")
	}
	request, err := s.FlagRequests.LoadFlagRequest(path)
	if err != nil {
		return nil, err
	}
	composer := core.NewFlagCommandComposer(s.TimeFormatter)
	cmds := make([]types.FlagCommand, 0, len(request.Commands))
	for _, spec := range request.Commands {
		cmds = append(cmds, composer.Compose(spec))
	}
	return cmds, nil
}
