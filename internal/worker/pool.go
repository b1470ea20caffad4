// Package worker runs board snapshot queries on a fixed set of goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/output"
)

// WorkItem is one snapshot to be processed. Each item owns its board, so
// workers never share mutable state.
type WorkItem struct {
	Board *chess.Board
	Text  string // FEN line, parsed by the worker when Board is nil
	Line  int    // 1-based source line of Text
	Index int    // 0-based position in the input
}

// ProcessResult is what a worker produced for one WorkItem.
type ProcessResult struct {
	Index    int
	Board    *chess.Board
	Snapshot *output.Snapshot
	Error    error
}

// ProcessFunc turns a work item into a result. It runs on several
// goroutines at once.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of goroutines and collects
// their results on one channel.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	stopped  chan struct{}
	stopOnce sync.Once
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool is NewPoolWithOptions with explicit worker and buffer counts.
func NewPool(numWorkers, bufferSize int, process ProcessFunc) *Pool {
	return NewPoolWithOptions(process, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool with 1 worker and a buffer of 10
// unless options say otherwise. Call Start before submitting.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		process:    process,
		stopped:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.IsStopped() {
			// keep draining so producers blocked in Submit can finish
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues item, blocking while the buffer is full. It returns false
// without queueing once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	select {
	case <-p.stopped:
		return false
	default:
	}
	select {
	case p.items <- item:
		return true
	case <-p.stopped:
		return false
	}
}

// TrySubmit queues item only if that does not block. It returns false
// when the buffer is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.items <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip every item not yet started. It is safe to call
// more than once and from any goroutine.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopped) })
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	select {
	case <-p.stopped:
		return true
	default:
		return false
	}
}

// Close ends submission, waits for the workers and then closes the
// result channel. Only the producer may call it, once.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results is the channel results arrive on, in completion order. Use
// InOrder to read them in submission order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
