package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func compressTable(t *testing.T, src string, dst string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(src, "table.yaml"))
	require.NoError(t, err)
	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer encoder.Close()
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "table.yaml.zst"), encoder.EncodeAll(data, nil), 0o644))
}
