// Package observability tracks statistics for a generation run.
package observability

import (
	"sync"
	"time"
)

// RunStats accumulates counters while chunks are generated and written.
// All methods are thread-safe; the S3 sink uploads in the background
// while generation continues.
type RunStats struct {
	mu      sync.Mutex
	start   time.Time
	records int64
	chunks  int64
	bytes   int64
	draws   uint64
}

// Snapshot is a point-in-time copy of the run counters.
type Snapshot struct {
	Records       int64
	Chunks        int64
	Bytes         int64
	Draws         uint64
	Duration      time.Duration
	RecordsPerSec float64
}

// NewRunStats starts the run clock.
func NewRunStats() *RunStats {
	return &RunStats{start: time.Now()}
}

// RecordChunk records one written chunk of the given row count.
func (r *RunStats) RecordChunk(rows int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records += int64(rows)
	r.chunks++
}

// RecordBytes adds written output bytes.
func (r *RunStats) RecordBytes(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bytes += n
}

// SetDraws records the final random stream position.
func (r *RunStats) SetDraws(d uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.draws = d
}

// Snapshot returns a copy of the counters with derived rates.
func (r *RunStats) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	elapsed := time.Since(r.start)
	snap := Snapshot{
		Records:  r.records,
		Chunks:   r.chunks,
		Bytes:    r.bytes,
		Draws:    r.draws,
		Duration: elapsed,
	}
	if elapsed > 0 {
		snap.RecordsPerSec = float64(r.records) / elapsed.Seconds()
	}
	return snap
}
