package core

import (
	"sort"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats"
)

// AttributesIdentical reports whether two spectral-window rows agree on
// every column they share. Numeric cells compare elementwise, with a
// scalar matching an array only if every element equals it; other cells
// use deep equality.
func AttributesIdentical(a, b map[string]any) bool {
	smaller, larger := a, b
	if len(b) < len(a) {
		smaller, larger = b, a
	}
	names := make([]string, 0, len(smaller))
	for name := range smaller {
		if _, shared := larger[name]; shared {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if !cellsEqual(smaller[name], larger[name]) {
			return false
		}
	}
	return true
}

func cellsEqual(a, b any) bool {
	af, aNumeric := asFloats(a)
	bf, bNumeric := asFloats(b)
	if aNumeric && bNumeric {
		switch {
		case len(af) == len(bf):
			return floats.Equal(af, bf)
		case isScalar(a) && len(af) == 1:
			return allEqual(bf, af[0])
		case isScalar(b) && len(bf) == 1:
			return allEqual(af, bf[0])
		default:
			return false
		}
	}
	return cmp.Equal(a, b)
}

func isScalar(value any) bool {
	switch value.(type) {
	case float64, int64, int:
		return true
	}
	return false
}

func allEqual(values []float64, want float64) bool {
	for _, value := range values {
		if value != want {
			return false
		}
	}
	return true
}
