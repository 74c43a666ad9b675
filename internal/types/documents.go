package types

// TableDocument is the on-disk form of a table dump. Every column holds
// one cell per row.
type TableDocument struct {
	Name    string         `yaml:"name,omitempty"`
	Columns map[string]any `yaml:"columns"`
}

// FlagRequestFile lists flag commands to compose in one run.
type FlagRequestFile struct {
	Commands []FlagCommandSpec `yaml:"commands"`
}

// MatchRecordsFile lists records to test flag commands against.
type MatchRecordsFile struct {
	Spectra []SpectrumRecord `yaml:"spectra"`
	Images  []ImageRecord    `yaml:"images"`
}

// SpwMapDocument is the written form of a spectral-window map.
type SpwMapDocument struct {
	Vis      string              `yaml:"vis"`
	CalTable string              `yaml:"caltable"`
	Trimmed  bool                `yaml:"trimmed"`
	SpwMap   []int               `yaml:"spwmap"`
	Windows  []CalibrationWindow `yaml:"windows,omitempty"`
}
