package adapters

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"casa-calmap/internal/ports"
)

// columnTable is an open, fully materialised table.
type columnTable struct {
	path    string
	names   []string
	columns map[string][]any
	rows    int
}

func newColumnTable(path string, raw map[string][]any) (*columnTable, error) {
	table := &columnTable{
		path:    path,
		columns: make(map[string][]any, len(raw)),
		rows:    -1,
	}
	for name, cells := range raw {
		if table.rows >= 0 && len(cells) != table.rows {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("table %s column %s has %d rows, expected %d", path, name, len(cells), table.rows))
		}
		table.rows = len(cells)
		normalized := make([]any, len(cells))
		for i, cell := range cells {
			normalized[i] = normalizeCell(cell)
		}
		table.columns[name] = normalized
		table.names = append(table.names, name)
	}
	if table.rows < 0 {
		table.rows = 0
	}
	sort.Strings(table.names)
	return table, nil
}

func (t *columnTable) ColNames() []string {
	return append([]string(nil), t.names...)
}

func (t *columnTable) GetCol(name string) ([]any, error) {
	cells, ok := t.columns[name]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("table %s has no column %s", t.path, name))
	}
	return append([]any(nil), cells...), nil
}

func (t *columnTable) GetCell(name string, row int) (any, error) {
	cells, ok := t.columns[name]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("table %s has no column %s", t.path, name))
	}
	if row < 0 || row >= len(cells) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("table %s row %d out of range (%d rows)", t.path, row, len(cells)))
	}
	return cells[row], nil
}

func (t *columnTable) NRows() int {
	return t.rows
}

func (t *columnTable) Close() error {
	return nil
}

// normalizeCell maps decoded YAML values and Go literals onto the cell
// types the table port promises.
func normalizeCell(cell any) any {
	switch v := cell.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float32:
		return float64(v)
	case []int:
		out := make([]int64, len(v))
		for i, item := range v {
			out[i] = int64(item)
		}
		return out
	case []any:
		return normalizeArray(v)
	default:
		return cell
	}
}

func normalizeArray(items []any) any {
	var ints []int64
	var floats []float64
	var strs []string
	numeric, allInts, allStrs := true, true, true
	for _, item := range items {
		switch v := normalizeCell(item).(type) {
		case int64:
			ints = append(ints, v)
			floats = append(floats, float64(v))
			allStrs = false
		case float64:
			floats = append(floats, v)
			allInts = false
			allStrs = false
		case string:
			strs = append(strs, v)
			numeric = false
		default:
			return items
		}
	}
	switch {
	case len(items) == 0:
		return []float64{}
	case numeric && allInts:
		return ints
	case numeric:
		return floats
	case allStrs:
		return strs
	default:
		return items
	}
}

var _ ports.TableHandle = (*columnTable)(nil)
