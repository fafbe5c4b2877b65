package pool

import (
	"sync/atomic"
	"time"
)

// Stats is a point-in-time snapshot of pool activity
type Stats struct {
	// WorkerCount is the fixed number of workers
	WorkerCount int

	// QueueLength is the current number of pending tasks
	QueueLength int

	// State is the lifecycle state at snapshot time
	State State

	// Submitted is the total number of accepted tasks
	Submitted uint64

	// Completed is the number of tasks that finished without failure
	Completed uint64

	// Failed is the number of tasks that resolved with a failure
	Failed uint64

	// TotalDuration is the accumulated execution time across all tasks
	TotalDuration time.Duration
}

// counters holds the pool's atomic activity counters
type counters struct {
	submitted     atomic.Uint64
	completed     atomic.Uint64
	failed        atomic.Uint64
	durationNanos atomic.Int64
}

// record accounts for one finished task
func (c *counters) record(d time.Duration, failed bool) {
	if failed {
		c.failed.Add(1)
	} else {
		c.completed.Add(1)
	}
	c.durationNanos.Add(int64(d))
}

// Stats returns a snapshot of pool activity. Counters are read individually;
// a snapshot taken while tasks are in flight is approximate.
func (p *Pool) Stats() Stats {
	return Stats{
		WorkerCount:   p.workerCount,
		QueueLength:   p.QueueLength(),
		State:         p.State(),
		Submitted:     p.counters.submitted.Load(),
		Completed:     p.counters.completed.Load(),
		Failed:        p.counters.failed.Load(),
		TotalDuration: time.Duration(p.counters.durationNanos.Load()),
	}
}
