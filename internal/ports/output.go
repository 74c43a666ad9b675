package ports

import "casa-calmap/internal/types"

type FlagCommandWriterPort interface {
	WriteFlagCommands(path string, cmds []types.FlagCommand) error
}

type SpwMapWriterPort interface {
	WriteSpwMap(path string, doc types.SpwMapDocument) error
}
