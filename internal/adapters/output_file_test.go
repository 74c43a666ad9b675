package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"casa-calmap/internal/types"
)

func TestFlagCommandFileAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "flags.txt")
	cmds := []types.FlagCommand{
		{Command: "spw='3' reason='bad data'"},
		{Command: "  "},
		{Command: "intent='*BANDPASS*' spw='21' reason='max_abs'"},
	}

	require.NoError(t, NewFlagCommandFileAdapter().WriteFlagCommands(path, cmds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "spw='3' reason='bad data'\nintent='*BANDPASS*' spw='21' reason='max_abs'\n", string(data))
}

func TestFlagCommandFileAdapterEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.txt")
	require.NoError(t, NewFlagCommandFileAdapter().WriteFlagCommands(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteOutputFileFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := writeOutputFile(filepath.Join(blocker, "nested", "out.txt"), []byte("y"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestSpwMapFileAdapter(t *testing.T) {
	baseband := 2
	doc := types.SpwMapDocument{
		Vis:      "uid.ms",
		CalTable: "uid.ms.tsys",
		Trimmed:  true,
		SpwMap:   []int{1, 2, 2, 1},
		Windows: []types.CalibrationWindow{{
			CalSpwID:   2,
			ValidRange: types.FrequencyRange{Min: 1, Max: 2},
			MapsToSpw:  []int{1, 2},
			BasebandID: &baseband,
		}},
	}
	path := filepath.Join(t.TempDir(), "spwmap.yaml")
	require.NoError(t, NewSpwMapFileAdapter().WriteSpwMap(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded types.SpwMapDocument
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, doc, decoded)
	assert.Contains(t, string(data), "spwmap:")
}
