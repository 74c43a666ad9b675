package ports

// TableReaderPort opens tables and subtables by path. Subtables are
// addressed as "<table>/<SUBTABLE>".
//
// Implementations never write; the core only reads already materialised
// rows through TableHandle.
type TableReaderPort interface {
	Open(path string) (TableHandle, error)
}

// TableHandle exposes the columns of one open table. Cell values are
// normalised to int64, float64, string, bool, []int64, []float64 or
// []string.
type TableHandle interface {
	ColNames() []string
	GetCol(name string) ([]any, error)
	GetCell(name string, row int) (any, error)
	NRows() int
	Close() error
}
