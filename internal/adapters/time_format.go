package adapters

import (
	"fmt"
	"math"
	"time"

	"github.com/ncruces/go-strftime"

	"casa-calmap/internal/ports"
	"casa-calmap/internal/types"
)

// mjdEpoch is the zero point of measurement-set TIME values.
var mjdEpoch = time.Date(1858, time.November, 17, 0, 0, 0, 0, time.UTC)

const calendarLayout = "%Y/%m/%d/%H:%M:%S"

// CalendarFormatter renders MJD-based epochs as YYYY/MM/DD/hh:mm:ss.sss.
type CalendarFormatter struct{}

func NewCalendarFormatter() CalendarFormatter {
	return CalendarFormatter{}
}

func (f CalendarFormatter) ToCalendarString(value float64, unit types.TimeUnit) string {
	t := epochTime(toSeconds(value, unit))
	return strftime.Format(calendarLayout, t) + fmt.Sprintf(".%03d", t.Nanosecond()/int(time.Millisecond))
}

func toSeconds(value float64, unit types.TimeUnit) float64 {
	switch unit {
	case types.TimeUnitMinutes:
		return value * 60
	case types.TimeUnitHours:
		return value * 3600
	case types.TimeUnitDays:
		return value * 86400
	default:
		return value
	}
}

func epochTime(seconds float64) time.Time {
	millis := int64(math.Round(seconds * 1000))
	return mjdEpoch.Add(time.Duration(millis) * time.Millisecond)
}

var _ ports.TimeFormatterPort = CalendarFormatter{}
