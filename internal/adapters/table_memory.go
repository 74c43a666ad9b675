package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"casa-calmap/internal/ports"
)

// MemoryTableAdapter serves tables held in memory, keyed by path.
type MemoryTableAdapter struct {
	tables map[string]map[string][]any
}

func NewMemoryTableAdapter() *MemoryTableAdapter {
	return &MemoryTableAdapter{tables: map[string]map[string][]any{}}
}

// Put registers or replaces the table at path.
func (a *MemoryTableAdapter) Put(path string, columns map[string][]any) {
	a.tables[path] = columns
}

func (a *MemoryTableAdapter) Open(path string) (ports.TableHandle, error) {
	columns, ok := a.tables[path]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("table not found: %s", path))
	}
	return newColumnTable(path, columns)
}

var _ ports.TableReaderPort = (*MemoryTableAdapter)(nil)
