package core

import (
	"fmt"
	"math"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gonum.org/v1/gonum/floats"

	"casa-calmap/internal/ports"
	"casa-calmap/internal/types"
)

// ReadSpectralWindows parses every row of a SPECTRAL_WINDOW table. Table
// access errors are returned as the reader produced them.
func ReadSpectralWindows(handle ports.TableHandle) ([]types.SpectralWindow, error) {
	columns := handle.ColNames()
	windows := make([]types.SpectralWindow, 0, handle.NRows())
	for row := 0; row < handle.NRows(); row++ {
		attributes := make(map[string]any, len(columns))
		for _, name := range columns {
			value, err := handle.GetCell(name, row)
			if err != nil {
				return nil, err
			}
			attributes[name] = value
		}
		window, err := spectralWindowFromRow(row, attributes)
		if err != nil {
			return nil, err
		}
		windows = append(windows, window)
	}
	return windows, nil
}

func spectralWindowFromRow(row int, attributes map[string]any) (types.SpectralWindow, error) {
	freqs, ok := asFloats(attributes[types.ColumnChanFreq])
	if !ok || len(freqs) == 0 {
		return types.SpectralWindow{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("spectral window %d has no %s values", row, types.ColumnChanFreq))
	}
	widths, _ := asFloats(attributes[types.ColumnChanWidth])
	window := types.SpectralWindow{
		ID:         row,
		ChanFreq:   freqs,
		ChanWidth:  widths,
		Attributes: attributes,
	}
	if value, found := attributes[types.ColumnBasebandNo]; found {
		if baseband, ok := asInt(value); ok {
			window.Baseband = &baseband
		}
	}
	return window, nil
}

// channelWidth is the spacing of the first channel pair, or the scalar
// CHAN_WIDTH for single-channel windows.
func channelWidth(window types.SpectralWindow) float64 {
	if len(window.ChanFreq) > 1 {
		return math.Abs(window.ChanFreq[1] - window.ChanFreq[0])
	}
	if len(window.ChanWidth) > 0 {
		return math.Abs(window.ChanWidth[0])
	}
	return 0
}

// calibrationRange widens a calibration window by tolerance channel
// widths on each side, so FDM windows slightly beyond the nominal TDM
// edges still match.
func calibrationRange(window types.SpectralWindow, tolerance float64) types.FrequencyRange {
	width := channelWidth(window) * tolerance
	return types.FrequencyRange{
		Min: floats.Min(window.ChanFreq) - width,
		Max: floats.Max(window.ChanFreq) + width,
	}
}

// dataRange is the edge-to-edge extent of a data window: half a channel
// beyond the outermost channel centres.
func dataRange(window types.SpectralWindow) types.FrequencyRange {
	half := channelWidth(window) / 2.0
	return types.FrequencyRange{
		Min: floats.Min(window.ChanFreq) - half,
		Max: floats.Max(window.ChanFreq) + half,
	}
}

func asFloats(value any) ([]float64, bool) {
	switch v := value.(type) {
	case float64:
		return []float64{v}, true
	case int64:
		return []float64{float64(v)}, true
	case int:
		return []float64{float64(v)}, true
	case []float64:
		return v, true
	case []int64:
		out := make([]float64, len(v))
		for i, item := range v {
			out[i] = float64(item)
		}
		return out, true
	case []any:
		out := make([]float64, 0, len(v))
		for _, item := range v {
			scalar, ok := asFloats(item)
			if !ok || len(scalar) != 1 {
				return nil, false
			}
			out = append(out, scalar[0])
		}
		return out, true
	default:
		return nil, false
	}
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	case []int64:
		if len(v) == 1 {
			return int(v[0]), true
		}
	}
	return 0, false
}
