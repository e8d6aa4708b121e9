package pipeline

// RunStats accumulates per-run counters for the summary line.
type RunStats struct {
	Total   int
	Current int
	Renamed int
	Skipped int
	Failed  int
}
