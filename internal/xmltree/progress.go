package xmltree

// Progress is one observation over a running build, published after an entry
// has been fully emitted.
type Progress struct {
	// Processed is the number of entries emitted so far; strictly increasing
	// across the observations of one build
	Processed int

	// Total is the entry count computed by the pre-scan
	Total int

	// Fraction is Processed/Total, 0.0 when Total is 0, clamped to 1.0
	Fraction float64
}

// ProgressFunc receives progress observations during a build. Invocations
// are strictly ordered; the consumer is responsible for any cross-goroutine
// display concerns.
type ProgressFunc func(Progress)

// Result carries the outcome of an asynchronous build: the complete document,
// or the error that aborted it.
type Result struct {
	XML string
	Err error
}

// tracker counts processed entries against a pre-scanned total. It is owned
// exclusively by one in-flight build and reset state never outlives it.
type tracker struct {
	total     int
	processed int
}

func newTracker(total int) *tracker {
	return &tracker{total: total}
}

// step records one processed entry and returns the observation to publish.
// The fraction is clamped because the tolerant pre-scan can undercount a tree
// whose unreadable corners the strict walk would have aborted on anyway.
func (t *tracker) step() Progress {
	t.processed++

	var fraction float64
	if t.total > 0 {
		fraction = float64(t.processed) / float64(t.total)
		if fraction > 1.0 {
			fraction = 1.0
		}
	}

	return Progress{
		Processed: t.processed,
		Total:     t.total,
		Fraction:  fraction,
	}
}
