package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"casa-calmap/internal/adapters"
	"casa-calmap/internal/app"
	"casa-calmap/internal/core"
	"casa-calmap/internal/types"
	"casa-calmap/tests/testutil"
)

// TestGoldenFlagCommands composes the fixture flag request and compares
// the written command files against committed golden files. Missing
// golden files are written so they can be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenFlagCommands(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")
	request := testutil.FixturePath(t, "flagging", "request.yaml")

	outDir := t.TempDir()
	svc := app.NewService("")
	cases := map[string]bool{
		"flags.txt":              false,
		"flags.consolidated.txt": true,
	}
	for name, consolidate := range cases {
		t.Run(name, func(t *testing.T) {
			actualPath := filepath.Join(outDir, name)
			_, err := svc.FlagCommands(t.Context(), app.FlagCommandsRequest{
				RequestPath: request,
				Output:      actualPath,
				Consolidate: consolidate,
			})
			require.NoError(t, err)
			actual, err := os.ReadFile(actualPath)
			require.NoError(t, err)

			goldenPath := filepath.Join(goldenDir, name)
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(actual),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
		})
	}
}

// TestGoldenSpwMapStructure maps the ALMA-like fixture end to end and
// checks the structural properties of the written document.
func TestGoldenSpwMapStructure(t *testing.T) {
	output := filepath.Join(t.TempDir(), "spwmap.yaml")
	svc := app.NewService("")
	_, err := svc.SpwMap(t.Context(), app.SpwMapRequest{
		Vis:      testutil.FixturePath(t, "tables", "alma.ms"),
		CalTable: testutil.FixturePath(t, "tables", "alma.tsys"),
		Trim:     true,
		Output:   output,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var doc types.SpwMapDocument
	require.NoError(t, yaml.Unmarshal(data, &doc))

	t.Run("trimmed map", func(t *testing.T) {
		assert.True(t, doc.Trimmed)
		assert.Equal(t, []int{1, 2, 2, 1}, doc.SpwMap)
	})

	t.Run("one window per measured spw", func(t *testing.T) {
		require.Len(t, doc.Windows, 2)
		assert.Equal(t, 1, doc.Windows[0].CalSpwID)
		assert.Equal(t, 2, doc.Windows[1].CalSpwID)
	})

	t.Run("baseband ids from identical windows", func(t *testing.T) {
		for _, window := range doc.Windows {
			require.NotNil(t, window.BasebandID, "cal spw %d", window.CalSpwID)
			assert.Equal(t, window.CalSpwID, *window.BasebandID)
		}
	})

	t.Run("every mapped spw lies in its window", func(t *testing.T) {
		for spw, cal := range doc.SpwMap {
			covered := false
			for _, window := range doc.Windows {
				if window.CalSpwID == cal && window.Covers(spw) {
					covered = true
				}
			}
			assert.True(t, covered, "spw %d not covered by cal spw %d", spw, cal)
		}
	})
}

// TestGoldenCompressedTables reads the fixture tables back from
// zstd-compressed copies and expects the same map.
func TestGoldenCompressedTables(t *testing.T) {
	dir := t.TempDir()
	for _, table := range []string{"scenario.tsys", "scenario.tsys/SPECTRAL_WINDOW", "scenario.ms/SPECTRAL_WINDOW"} {
		compressTable(t, testutil.FixturePath(t, "tables", table), filepath.Join(dir, table))
	}

	spwMap, err := core.NewSpwMapper().BuildFromTables(t.Context(), adapters.NewTableFileAdapter(),
		filepath.Join(dir, "scenario.ms"), filepath.Join(dir, "scenario.tsys"), core.SpwMapOptions{Trim: true})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 5}, spwMap.Full)
	assert.Equal(t, []int{5, 1}, spwMap.Trimmed)
}
