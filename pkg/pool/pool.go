package pool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/jzx17/taskpool/pkg/types"
)

// State defines the lifecycle state of a Pool
type State int32

const (
	// StateRunning accepts new submissions
	StateRunning State = iota
	// StateStopping refuses new submissions while queued tasks drain
	StateStopping
	// StateDrained means every worker has exited and the pool is inert
	StateDrained
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateDrained:
		return "drained"
	default:
		return "unknown"
	}
}

// Pool is a fixed-size worker pool with an unbounded FIFO task queue.
//
// Workers are spawned once at construction and live until the pool drains.
// Submissions append to the queue and never block; results are delivered
// through per-task futures. Stop refuses further submissions, Close blocks
// until every already-queued task has executed.
type Pool struct {
	workerCount  int
	clock        types.Clock
	errorHandler types.ErrorHandler

	// mu guards queue and every state-changing decision; state is also
	// readable outside the lock as an atomic snapshot for fast paths.
	mu    sync.Mutex
	cond  *sync.Cond
	queue []*task
	state atomic.Int32

	wg        sync.WaitGroup
	closeOnce sync.Once
	drained   chan struct{}

	counters counters
}

// New creates the pool and starts its workers. A nil config uses defaults;
// WorkerCount zero selects runtime.NumCPU, coerced to at least one worker.
func New(cfg *Config) (*Pool, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, fmt.Errorf("invalid pool config: %w", err)
	}

	p := &Pool{
		workerCount:  cfg.WorkerCount,
		clock:        cfg.Clock,
		errorHandler: cfg.ErrorHandler,
		drained:      make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	p.state.Store(int32(StateRunning))

	p.wg.Add(p.workerCount)
	for i := 0; i < p.workerCount; i++ {
		go p.workerLoop(i)
	}
	return p, nil
}

// Enqueue submits fn for asynchronous execution and returns the future that
// will carry its result. It is a package-level function because methods
// cannot introduce type parameters.
//
// fn's returned error, or any panic it raises, resolves the future as a
// failure; neither affects the executing worker or other tasks. Enqueue
// fails with types.ErrPoolStopped once a stop has been requested.
func Enqueue[T any](p *Pool, fn func() (T, error)) (*Future[T], error) {
	if fn == nil {
		return nil, types.ErrNilFunc
	}

	fut := newFuture[T]()
	t := newTask(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				var buf [4096]byte
				n := runtime.Stack(buf[:], false)
				err = types.NewPanicError(r, buf[:n])
				fut.reject(err)
			}
		}()

		value, ferr := fn()
		if ferr != nil {
			fut.reject(ferr)
			return ferr
		}
		fut.resolve(value)
		return nil
	})

	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	return fut, nil
}

// Submit is the untyped convenience form of Enqueue for tasks that produce
// no value.
func (p *Pool) Submit(fn func() error) (*Future[struct{}], error) {
	if fn == nil {
		return nil, types.ErrNilFunc
	}
	return Enqueue(p, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// enqueue appends the task and wakes one idle worker. The running check and
// the append are atomic with respect to a concurrent Stop.
func (p *Pool) enqueue(t *task) error {
	// fast path: no wakeup attempt on a stopped pool
	if State(p.state.Load()) != StateRunning {
		return types.ErrPoolStopped
	}

	p.mu.Lock()
	if State(p.state.Load()) != StateRunning {
		p.mu.Unlock()
		return types.ErrPoolStopped
	}
	p.queue = append(p.queue, t)
	p.mu.Unlock()

	p.counters.submitted.Add(1)
	p.cond.Signal()
	return nil
}

// workerLoop is the long-lived executor body: wait for work, run it,
// repeat until the pool is stopping and the queue is empty.
func (p *Pool) workerLoop(id int) {
	defer p.wg.Done()

	for {
		t, ok := p.next()
		if !ok {
			return
		}
		p.runTask(id, t)
	}
}

// next blocks until a task is available or the pool should exit. The
// predicate is re-checked under the lock after every wakeup.
func (p *Pool) next() (*task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) == 0 && State(p.state.Load()) == StateRunning {
		p.cond.Wait()
	}

	// sole exit condition: stop requested and nothing left to drain
	if len(p.queue) == 0 {
		return nil, false
	}

	t := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return t, true
}

// runTask invokes a dequeued task outside the lock. Task failures were
// already delivered to the future by the invocation itself; the outer
// recover only guards against failures escaping result capture, which are
// reported to the error handler and never terminate the worker.
func (p *Pool) runTask(id int, t *task) {
	defer func() {
		if r := recover(); r != nil {
			var buf [4096]byte
			n := runtime.Stack(buf[:], false)
			p.errorHandler(fmt.Errorf("worker %d: failure escaped result capture for %s: %v\n%s",
				id, t.ID(), r, buf[:n]))
		}
	}()

	start := p.clock.Now()
	err := t.invoke()
	p.counters.record(p.clock.Since(start), err != nil)
}

// Stop moves the pool from running to stopping and wakes every idle worker.
// It is idempotent, never blocks, and does not discard queued tasks.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.state.CompareAndSwap(int32(StateRunning), int32(StateStopping))
	p.mu.Unlock()

	p.cond.Broadcast()
}

// Close stops the pool if needed and blocks until the queue has fully
// drained and every worker has exited. Safe to call more than once; later
// calls wait for the same drain.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.Stop()
		p.wg.Wait()
		p.state.Store(int32(StateDrained))
		close(p.drained)
	})
	<-p.drained
}

// State returns an atomically-consistent snapshot of the lifecycle state
func (p *Pool) State() State {
	return State(p.state.Load())
}

// WorkerCount returns the fixed number of workers, stable for the pool's
// lifetime.
func (p *Pool) WorkerCount() int {
	return p.workerCount
}

// QueueLength returns the current number of pending tasks
func (p *Pool) QueueLength() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}
