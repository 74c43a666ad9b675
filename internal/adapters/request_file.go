package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"casa-calmap/internal/ports"
	"casa-calmap/internal/types"
)

type FlagRequestFileAdapter struct{}

func NewFlagRequestFileAdapter() FlagRequestFileAdapter {
	return FlagRequestFileAdapter{}
}

func (a FlagRequestFileAdapter) LoadFlagRequest(path string) (types.FlagRequestFile, error) {
	var request types.FlagRequestFile
	if err := loadYAML(path, "flag request", &request); err != nil {
		return types.FlagRequestFile{}, err
	}
	for i, spec := range request.Commands {
		if spec.Filename == "" {
			return types.FlagRequestFile{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("flag request command %d has no filename", i))
		}
	}
	return request, nil
}

func (a FlagRequestFileAdapter) LoadMatchRecords(path string) (types.MatchRecordsFile, error) {
	var records types.MatchRecordsFile
	if err := loadYAML(path, "match records", &records); err != nil {
		return types.MatchRecordsFile{}, err
	}
	return records, nil
}

func loadYAML(path string, what string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(what + " file not found").
			WithCause(err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse " + what + " yaml").
			WithCause(err)
	}
	return nil
}

var _ ports.FlagRequestPort = FlagRequestFileAdapter{}
