package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"casa-calmap/internal/ports"
	"casa-calmap/internal/types"
)

type SpwMapFileAdapter struct{}

func NewSpwMapFileAdapter() SpwMapFileAdapter {
	return SpwMapFileAdapter{}
}

func (a SpwMapFileAdapter) WriteSpwMap(path string, doc types.SpwMapDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode spw map").
			WithCause(err)
	}
	return writeOutputFile(path, data)
}

var _ ports.SpwMapWriterPort = SpwMapFileAdapter{}
