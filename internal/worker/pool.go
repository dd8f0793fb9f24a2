// Package worker provides a small worker pool for fanning independent
// position analyses out over goroutines.
package worker

import (
	"sync"
	"sync/atomic"
)

// Item is one unit of work with its original index for tracking.
type Item struct {
	Payload interface{}
	Index   int
}

// Result is the outcome of processing an item.
type Result struct {
	Index int
	Value interface{}
	Err   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item Item) Result

// Pool manages a fixed set of workers draining a buffered work channel.
type Pool struct {
	numWorkers  int
	workChan    chan Item
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// NewPool creates a pool with the given number of workers and channel buffer.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan Item, bufferSize),
		resultChan:  make(chan Result, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item. It may block if the buffer is full.
func (p *Pool) Submit(item Item) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items. Items already queued
// are drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
