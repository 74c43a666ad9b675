package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/prometheus/client_golang/prometheus"

	"casa-calmap/internal/ports"
)

// TextfileMetricsAdapter keeps per-run counters in a private registry and
// writes them in the Prometheus text format for a node exporter textfile
// collector. An empty path disables writing.
type TextfileMetricsAdapter struct {
	path     string
	registry *prometheus.Registry

	SpwMaps      prometheus.Counter
	DataSpws     *prometheus.CounterVec
	FlagCommands prometheus.Counter
}

func NewTextfileMetricsAdapter(path string) *TextfileMetricsAdapter {
	registry := prometheus.NewRegistry()
	spwMaps := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "casa_calmap_spwmaps_built_total",
		Help: "Number of spectral-window maps built.",
	})
	dataSpws := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casa_calmap_data_spws_total",
		Help: "Data spectral windows mapped, labeled by whether a calibration window covered them.",
	}, []string{"mapping"})
	flagCommands := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "casa_calmap_flag_commands_total",
		Help: "Number of flag commands composed.",
	})
	registry.MustRegister(spwMaps, dataSpws, flagCommands)
	return &TextfileMetricsAdapter{
		path:         path,
		registry:     registry,
		SpwMaps:      spwMaps,
		DataSpws:     dataSpws,
		FlagCommands: flagCommands,
	}
}

func (a *TextfileMetricsAdapter) SpwMapBuilt(dataSpws int, selfMapped int) {
	a.SpwMaps.Inc()
	a.DataSpws.WithLabelValues("calibrated").Add(float64(dataSpws - selfMapped))
	a.DataSpws.WithLabelValues("self").Add(float64(selfMapped))
}

func (a *TextfileMetricsAdapter) FlagCommandsComposed(count int) {
	a.FlagCommands.Add(float64(count))
}

func (a *TextfileMetricsAdapter) Flush() error {
	if a.path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.path, a.registry); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write metrics textfile").
			WithCause(err)
	}
	return nil
}

// Gatherer exposes the registry for inspection.
func (a *TextfileMetricsAdapter) Gatherer() prometheus.Gatherer {
	return a.registry
}

var _ ports.MetricsPort = (*TextfileMetricsAdapter)(nil)
