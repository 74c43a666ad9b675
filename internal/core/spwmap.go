package core

import (
	"context"
	"fmt"
	"slices"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"casa-calmap/internal/ports"
	"casa-calmap/internal/types"
)

// DefaultChannelTolerance widens calibration windows by one full channel
// on each side, twice the half-channel margin applied to data windows.
const DefaultChannelTolerance = 1.0

type SpwMapOptions struct {
	Trim             bool
	ChannelTolerance float64
}

// SpwMapInput carries the parsed tables a mapping run works from.
// CalWindows is indexed by calibration spw id, DataWindows by data spw id.
type SpwMapInput struct {
	DataWindows    []types.SpectralWindow
	CalWindows     []types.SpectralWindow
	MeasuredSpwIDs []int
}

type SpwMapper struct{}

func NewSpwMapper() SpwMapper {
	return SpwMapper{}
}

// BuildFromTables reads the measurement table <caltable>, its
// SPECTRAL_WINDOW subtable and <vis>/SPECTRAL_WINDOW, then builds the map.
func (m SpwMapper) BuildFromTables(ctx context.Context, reader ports.TableReaderPort, vis string, caltable string, opts SpwMapOptions) (types.SpwMap, error) {
	assert.NotEmpty(ctx, vis, "vis must be set")
	assert.NotEmpty(ctx, caltable, "caltable must be set")

	measured, err := readMeasuredSpwIDs(reader, caltable)
	if err != nil {
		return types.SpwMap{}, err
	}
	calWindows, err := readSpectralWindowTable(reader, subtablePath(caltable))
	if err != nil {
		return types.SpwMap{}, err
	}
	dataWindows, err := readSpectralWindowTable(reader, subtablePath(vis))
	if err != nil {
		return types.SpwMap{}, err
	}
	return m.Build(ctx, SpwMapInput{
		DataWindows:    dataWindows,
		CalWindows:     calWindows,
		MeasuredSpwIDs: measured,
	}, opts)
}

// Build computes, for every data spectral window, the calibration window
// whose solutions apply to it. Windows covered by no calibration window
// map to themselves.
func (m SpwMapper) Build(ctx context.Context, input SpwMapInput, opts SpwMapOptions) (types.SpwMap, error) {
	numData := len(input.DataWindows)
	if len(input.MeasuredSpwIDs) == 0 {
		identity := identityMap(numData)
		log.Ctx(ctx).Debug().Int("spws", numData).Msg("no measured calibration windows, identity map")
		return types.SpwMap{Full: identity, Trimmed: slices.Clone(identity)}, nil
	}
	tolerance := opts.ChannelTolerance
	if tolerance <= 0 {
		tolerance = DefaultChannelTolerance
	}

	measured := slices.Clone(input.MeasuredSpwIDs)
	slices.Sort(measured)
	measured = slices.Compact(measured)

	windows := make([]types.CalibrationWindow, 0, len(measured))
	for _, id := range measured {
		calWindow, err := lookupCalWindow(input.CalWindows, id)
		if err != nil {
			return types.SpwMap{}, err
		}
		windows = append(windows, types.CalibrationWindow{
			CalSpwID:   id,
			ValidRange: calibrationRange(calWindow, tolerance),
		})
	}

	for i, dataWindow := range input.DataWindows {
		bounds := dataRange(dataWindow)
		for w := range windows {
			if windows[w].ValidRange.Contains(bounds) {
				windows[w].MapsToSpw = append(windows[w].MapsToSpw, i)
			}
		}
	}

	for w := range windows {
		calWindow := input.CalWindows[windows[w].CalSpwID]
		for _, spw := range windows[w].MapsToSpw {
			dataWindow := input.DataWindows[spw]
			if AttributesIdentical(calWindow.Attributes, dataWindow.Attributes) && dataWindow.Baseband != nil {
				baseband := *dataWindow.Baseband
				windows[w].BasebandID = &baseband
			}
		}
	}

	full := make([]int, numData)
	selfMapped := 0
	for i, dataWindow := range input.DataWindows {
		useSpw := -1
		for _, window := range windows {
			if !window.Covers(i) {
				continue
			}
			if useSpw < 0 {
				useSpw = window.CalSpwID
				continue
			}
			if window.BasebandID != nil && dataWindow.Baseband != nil && *window.BasebandID == *dataWindow.Baseband {
				useSpw = window.CalSpwID
			}
		}
		if useSpw < 0 {
			useSpw = i
			selfMapped++
		}
		full[i] = useSpw
	}

	log.Ctx(ctx).Debug().
		Int("spws", numData).
		Int("cal_windows", len(windows)).
		Int("self_mapped", selfMapped).
		Msg("spw map built")
	return types.SpwMap{
		Full:    full,
		Trimmed: TrimSpwMap(full),
		Windows: windows,
	}, nil
}

// TrimSpwMap drops the tail of a map that is already the identity. It
// returns the prefix in front of the first suffix equal to the matching
// identity suffix. When no such suffix exists only the last entry is
// dropped, which is how the map has always been trimmed.
func TrimSpwMap(spwMap []int) []int {
	if len(spwMap) == 0 {
		return []int{}
	}
	for i := range spwMap {
		if isIdentitySuffix(spwMap, i) {
			return slices.Clone(spwMap[:i])
		}
	}
	return slices.Clone(spwMap[:len(spwMap)-1])
}

func isIdentitySuffix(spwMap []int, from int) bool {
	for i := from; i < len(spwMap); i++ {
		if spwMap[i] != i {
			return false
		}
	}
	return true
}

func identityMap(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func lookupCalWindow(windows []types.SpectralWindow, id int) (types.SpectralWindow, error) {
	if id < 0 || id >= len(windows) {
		return types.SpectralWindow{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("calibration table references spectral window %d missing from its %s subtable", id, types.SpectralWindowSubtable))
	}
	return windows[id], nil
}

func readMeasuredSpwIDs(reader ports.TableReaderPort, caltable string) ([]int, error) {
	handle, err := reader.Open(caltable)
	if err != nil {
		return nil, err
	}
	defer func() { _ = handle.Close() }()

	column, err := handle.GetCol(types.ColumnSpectralWindowID)
	if err != nil {
		return nil, err
	}
	seen := map[int]struct{}{}
	ids := make([]int, 0, len(column))
	for row, cell := range column {
		id, ok := asInt(cell)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s row %d is not an integer", types.ColumnSpectralWindowID, row))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func readSpectralWindowTable(reader ports.TableReaderPort, path string) ([]types.SpectralWindow, error) {
	handle, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = handle.Close() }()
	return ReadSpectralWindows(handle)
}

func subtablePath(table string) string {
	return table + "/" + types.SpectralWindowSubtable
}
