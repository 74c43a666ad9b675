package types

// FrequencyRange is a closed frequency interval in Hz.
type FrequencyRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether other lies entirely inside r, bounds inclusive.
func (r FrequencyRange) Contains(other FrequencyRange) bool {
	return other.Min >= r.Min && other.Max <= r.Max
}

// SpectralWindow is one parsed row of a SPECTRAL_WINDOW table.
// Attributes keeps every column of the row for attribute-wise identity
// checks; the typed fields are the ones the mapper reads directly.
type SpectralWindow struct {
	ID         int
	ChanFreq   []float64
	ChanWidth  []float64
	Baseband   *int
	Attributes map[string]any
}

// CalibrationWindow indexes one measured calibration spectral window and
// the data windows it covers.
type CalibrationWindow struct {
	CalSpwID   int            `yaml:"cal_spw"`
	ValidRange FrequencyRange `yaml:"valid_range"`
	MapsToSpw  []int          `yaml:"maps_to"`
	BasebandID *int           `yaml:"baseband,omitempty"`
}

// Covers reports whether the data window id was matched to this window.
func (w CalibrationWindow) Covers(spw int) bool {
	for _, id := range w.MapsToSpw {
		if id == spw {
			return true
		}
	}
	return false
}

// SpwMap is the result of a spectral-window mapping run.
type SpwMap struct {
	Full    []int
	Trimmed []int
	Windows []CalibrationWindow
}

// Selected returns the trimmed or the exhaustive map.
func (m SpwMap) Selected(trim bool) []int {
	if trim {
		return m.Trimmed
	}
	return m.Full
}

// SelfMapped counts data windows no calibration window covered.
func (m SpwMap) SelfMapped() int {
	count := 0
	for spw := range m.Full {
		covered := false
		for _, window := range m.Windows {
			if window.Covers(spw) {
				covered = true
				break
			}
		}
		if !covered {
			count++
		}
	}
	return count
}
