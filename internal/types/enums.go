package types

// Column names read from measurement-set and calibration tables.
const (
	ColumnSpectralWindowID = "SPECTRAL_WINDOW_ID"
	ColumnChanFreq         = "CHAN_FREQ"
	ColumnChanWidth        = "CHAN_WIDTH"
	ColumnBasebandNo       = "BBC_NO"
)

// SpectralWindowSubtable is the subtable holding spectral-window rows.
const SpectralWindowSubtable = "SPECTRAL_WINDOW"

// Axis names recognised in flagging coordinates.
const (
	AxisAntenna1 = "ANTENNA1"
	AxisTime     = "TIME"
	AxisAntenna  = "ANTENNA"
)

type ClauseKey string

const (
	ClauseIntent      ClauseKey = "intent"
	ClauseSpw         ClauseKey = "spw"
	ClauseCorrelation ClauseKey = "correlation"
	ClauseReason      ClauseKey = "reason"
	ClauseAntenna     ClauseKey = "antenna"
	ClauseTimerange   ClauseKey = "timerange"
)

type TimeUnit string

const (
	TimeUnitSeconds TimeUnit = "s"
	TimeUnitMinutes TimeUnit = "min"
	TimeUnitHours   TimeUnit = "h"
	TimeUnitDays    TimeUnit = "d"
)
