/*
Package pool provides a fixed-size worker pool with asynchronous task
submission and future-based result delivery.

# Overview

A Pool owns a fixed set of long-lived worker goroutines sharing one
unbounded FIFO task queue. Submissions never block: Enqueue appends the task
and returns a Future through which the caller later retrieves the computed
value or the failure the task raised.

The pool moves through three lifecycle states: running, stopping, drained.
Stop refuses further submissions but keeps already-queued tasks eligible for
execution. Close blocks until the queue is empty and every worker has
exited, so no accepted task is ever discarded.

# Failure isolation

A failure raised by a task — an error return or a panic — resolves only that
task's future. It never terminates the worker, never affects sibling tasks,
and never stops the pool. Panics are wrapped in types.PanicError with the
stack captured at the recovery point. Failures that escape result capture
itself are reported to the configured ErrorHandler and the worker keeps
looping.

# Usage

	p, err := pool.New(&pool.Config{WorkerCount: 4})
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fut, err := pool.Enqueue(p, func() (int, error) {
		return 10 + 20, nil
	})
	if err != nil {
		log.Fatal(err)
	}

	sum, err := fut.Get()

Enqueue is a package-level generic function because Go methods cannot
introduce type parameters; Pool.Submit covers the common no-result case.
*/
package pool
