// Package worker provides a worker pool for parallel position encoding.
package worker

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNotProcessed marks Map results whose input was never submitted
// because the stop function fired, or was drained after Stop.
var ErrNotProcessed = errors.New("worker: item not processed")

// WorkItem is one input handed to a worker.
type WorkItem[In any] struct {
	Value In
	Index int // Original index for tracking
}

// Result is the outcome of processing one WorkItem.
type Result[Out any] struct {
	Value Out
	Index int
	Err   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[In, Out any] func(item WorkItem[In]) Result[Out]

// Pool manages a pool of workers. Results arrive in completion order;
// use Result.Index to restore input order.
type Pool[In, Out any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem[In]
	resultChan  chan Result[Out]
	processFunc ProcessFunc[In, Out]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*poolSettings)

type poolSettings struct {
	numWorkers int
	bufferSize int
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *poolSettings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *poolSettings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; other settings
// default to 1 worker and a buffer size of 10.
func NewPool[In, Out any](processFunc ProcessFunc[In, Out], opts ...PoolOption) *Pool[In, Out] {
	s := poolSettings{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[In, Out]{
		numWorkers:  s.numWorkers,
		bufferSize:  s.bufferSize,
		workChan:    make(chan WorkItem[In], s.bufferSize),
		resultChan:  make(chan Result[Out], s.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[In, Out]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[In, Out]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[In, Out]) Submit(item WorkItem[In]) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[In, Out]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[In, Out]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker has returned.
func (p *Pool[In, Out]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[In, Out]) Results() <-chan Result[Out] {
	return p.resultChan
}

// Map runs fn over inputs on a pool of the given size and returns the
// results in input order. It stops submitting once stop returns true.
func Map[In, Out any](inputs []In, workers int, fn func(In) (Out, error), stop func() bool) []Result[Out] {
	pool := NewPool(func(item WorkItem[In]) Result[Out] {
		v, err := fn(item.Value)
		return Result[Out]{Value: v, Index: item.Index, Err: err}
	}, WithWorkers(workers), WithBufferSize(2*workers))
	pool.Start()

	go func() {
		for i, in := range inputs {
			if stop != nil && stop() {
				pool.Stop()
				break
			}
			pool.Submit(WorkItem[In]{Value: in, Index: i})
		}
		pool.Close()
	}()

	out := make([]Result[Out], len(inputs))
	seen := make([]bool, len(inputs))
	for r := range pool.Results() {
		out[r.Index] = r
		seen[r.Index] = true
	}
	for i := range out {
		if !seen[i] {
			out[i] = Result[Out]{Index: i, Err: ErrNotProcessed}
		}
	}
	return out
}
