package ports

// MetricsPort records per-run counters. Flush persists them if the
// implementation has a destination configured.
type MetricsPort interface {
	SpwMapBuilt(dataSpws int, selfMapped int)
	FlagCommandsComposed(count int)
	Flush() error
}
