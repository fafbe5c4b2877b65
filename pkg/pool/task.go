package pool

import (
	"fmt"
	"sync/atomic"
)

// taskIDCounter is the global task ID counter
var taskIDCounter int64

// task is a type-erased unit of deferred work. The queue owns it until a
// worker dequeues it; the dequeuing worker owns it for the duration of its
// single invocation.
type task struct {
	id     string
	invoke func() error
}

// newTask creates a task around a prepared invocation. The invocation is
// responsible for delivering its outcome to the associated future; the
// returned error exists for the pool's accounting only.
func newTask(invoke func() error) *task {
	id := atomic.AddInt64(&taskIDCounter, 1)
	return &task{
		id:     fmt.Sprintf("task-%d", id),
		invoke: invoke,
	}
}

// ID returns the task ID
func (t *task) ID() string {
	return t.id
}
