package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"casa-calmap/internal/core"
	"casa-calmap/internal/types"
)

func (s Service) SpwMap(ctx context.Context, req SpwMapRequest) (SpwMapResult, error) {
	vis := strings.TrimSpace(req.Vis)
	if vis == "" {
		return SpwMapResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("vis path is required")
	}
	caltable := strings.TrimSpace(req.CalTable)
	if caltable == "" {
		return SpwMapResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("caltable path is required")
	}
	if req.Tolerance < 0 {
		return SpwMapResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("channel tolerance must not be negative")
	}

	mapper := core.NewSpwMapper()
	spwMap, err := mapper.BuildFromTables(ctx, s.Tables, vis, caltable, core.SpwMapOptions{
		Trim:             req.Trim,
		ChannelTolerance: req.Tolerance,
	})
	if err != nil {
		return SpwMapResult{}, err
	}
	selfMapped := spwMap.SelfMapped()
	if s.Metrics != nil {
		s.Metrics.SpwMapBuilt(len(spwMap.Full), selfMapped)
	}

	result := SpwMapResult{
		SpwMap:     spwMap.Selected(req.Trim),
		Full:       spwMap.Full,
		Windows:    spwMap.Windows,
		SelfMapped: selfMapped,
	}
	if output := strings.TrimSpace(req.Output); output != "" {
		err := s.SpwMapWriter.WriteSpwMap(output, types.SpwMapDocument{
			Vis:      vis,
			CalTable: caltable,
			Trimmed:  req.Trim,
			SpwMap:   result.SpwMap,
			Windows:  spwMap.Windows,
		})
		if err != nil {
			return SpwMapResult{}, err
		}
		result.OutputPath = output
	}
	return result, nil
}
