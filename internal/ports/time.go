package ports

import "casa-calmap/internal/types"

// TimeFormatterPort converts an epoch quantity into a calendar string
// accepted by flagging timerange selections.
type TimeFormatterPort interface {
	ToCalendarString(value float64, unit types.TimeUnit) string
}
