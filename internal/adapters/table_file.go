package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"casa-calmap/internal/ports"
	"casa-calmap/internal/types"
)

const (
	tableFileName     = "table.yaml"
	tableFileNameZstd = "table.yaml.zst"
)

// TableFileAdapter reads table dumps stored as <table>/table.yaml, or
// zstd-compressed as <table>/table.yaml.zst. Subtables are nested
// directories.
type TableFileAdapter struct{}

func NewTableFileAdapter() TableFileAdapter {
	return TableFileAdapter{}
}

func (a TableFileAdapter) Open(path string) (ports.TableHandle, error) {
	data, err := readTableFile(path)
	if err != nil {
		return nil, err
	}
	var doc types.TableDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse table %s", path)).
			WithCause(err)
	}
	columns := make(map[string][]any, len(doc.Columns))
	for name, raw := range doc.Columns {
		cells, ok := raw.([]any)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("table %s column %s is not a list of cells", path, name))
		}
		columns[name] = cells
	}
	return newColumnTable(path, columns)
}

func readTableFile(path string) ([]byte, error) {
	plain := filepath.Join(path, tableFileName)
	if data, err := os.ReadFile(plain); err == nil {
		return data, nil
	}
	compressed, err := os.ReadFile(filepath.Join(path, tableFileNameZstd))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("table not found: %s", path)).
			WithCause(err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create zstd decoder").
			WithCause(err)
	}
	defer decoder.Close()
	data, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to decompress table %s", path)).
			WithCause(err)
	}
	return data, nil
}

var _ ports.TableReaderPort = TableFileAdapter{}
