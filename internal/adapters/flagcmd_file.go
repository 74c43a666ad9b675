package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"casa-calmap/internal/ports"
	"casa-calmap/internal/types"
)

// FlagCommandFileAdapter writes flag commands one per line, the layout
// flagging tasks accept as a command list file.
type FlagCommandFileAdapter struct{}

func NewFlagCommandFileAdapter() FlagCommandFileAdapter {
	return FlagCommandFileAdapter{}
}

func (a FlagCommandFileAdapter) WriteFlagCommands(path string, cmds []types.FlagCommand) error {
	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		if strings.TrimSpace(cmd.Command) == "" {
			continue
		}
		lines = append(lines, cmd.Command)
	}
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return writeOutputFile(path, []byte(content))
}

func writeOutputFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create output directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write output file").
			WithCause(err)
	}
	return nil
}

var _ ports.FlagCommandWriterPort = FlagCommandFileAdapter{}
