package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"casa-calmap/internal/types"
)

func TestCalendarFormatter(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  types.TimeUnit
		want  string
	}{
		{name: "epoch", value: 0, unit: types.TimeUnitSeconds, want: "1858/11/17/00:00:00.000"},
		{name: "j2000 noon", value: 4453444800, unit: types.TimeUnitSeconds, want: "2000/01/01/12:00:00.000"},
		{name: "half second before", value: 4453444799.5, unit: types.TimeUnitSeconds, want: "2000/01/01/11:59:59.500"},
		{name: "milliseconds rounded", value: 4453444800.1234, unit: types.TimeUnitSeconds, want: "2000/01/01/12:00:00.123"},
		{name: "days", value: 51544.5, unit: types.TimeUnitDays, want: "2000/01/01/12:00:00.000"},
		{name: "hours", value: 25, unit: types.TimeUnitHours, want: "1858/11/18/01:00:00.000"},
		{name: "minutes", value: 90, unit: types.TimeUnitMinutes, want: "1858/11/17/01:30:00.000"},
	}
	formatter := NewCalendarFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.ToCalendarString(tt.value, tt.unit))
		})
	}
}
