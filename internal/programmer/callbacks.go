package programmer

import "time"

// Progress describes one bulk-transfer step. Nothing is persisted between
// chunks; every field is recomputed from the running byte counter.
type Progress struct {
	// Bytes transferred so far
	Bytes int

	// Total expected size of the transfer
	Total int

	// Percentage is floor(Bytes / Total * 100)
	Percentage int

	// Address range covered by the last chunk
	FromAddress int
	ToAddress   int

	// Elapsed since the transfer started
	Elapsed time.Duration
}

// ProgressCallback is invoked once per transferred chunk. Implementations
// should return quickly; the serial exchange is stalled while it runs.
type ProgressCallback func(Progress)
