package app

import (
	"casa-calmap/internal/adapters"
	"casa-calmap/internal/ports"
)

type Service struct {
	Tables        ports.TableReaderPort
	TimeFormatter ports.TimeFormatterPort
	FlagRequests  ports.FlagRequestPort
	FlagWriter    ports.FlagCommandWriterPort
	SpwMapWriter  ports.SpwMapWriterPort
	Metrics       ports.MetricsPort
}

func NewService(metricsPath string) Service {
	return Service{
		Tables:        adapters.NewTableFileAdapter(),
		TimeFormatter: adapters.NewCalendarFormatter(),
		FlagRequests:  adapters.NewFlagRequestFileAdapter(),
		FlagWriter:    adapters.NewFlagCommandFileAdapter(),
		SpwMapWriter:  adapters.NewSpwMapFileAdapter(),
		Metrics:       adapters.NewTextfileMetricsAdapter(metricsPath),
	}
}
