// Package worker provides a bounded worker pool whose results are returned
// by value over a channel.
package worker

import "sync"

// WorkItem is a unit of work submitted to a Pool.
type WorkItem[In any] struct {
	Value In
	Index int // submission index, echoed in the result
}

// ProcessResult is the outcome of processing one WorkItem.
type ProcessResult[Out any] struct {
	Value Out
	Index int
}

// ProcessFunc processes one work item.
type ProcessFunc[In, Out any] func(item WorkItem[In]) ProcessResult[Out]

// Pool runs a fixed number of workers. Each worker owns the item it is
// processing and hands its result back through the result channel, so no
// state is shared between tasks.
type Pool[In, Out any] struct {
	numWorkers  int
	workChan    chan WorkItem[In]
	resultChan  chan ProcessResult[Out]
	processFunc ProcessFunc[In, Out]
	wg          sync.WaitGroup
}

// NewPool creates a pool of numWorkers goroutines with channels buffered
// for bufferSize items. Values below 1 are raised to 1.
func NewPool[In, Out any](numWorkers, bufferSize int, processFunc ProcessFunc[In, Out]) *Pool[In, Out] {
	numWorkers = max(numWorkers, 1)
	bufferSize = max(bufferSize, 1)
	return &Pool[In, Out]{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem[In], bufferSize),
		resultChan:  make(chan ProcessResult[Out], bufferSize),
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

func (p *Pool[In, Out]) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the work buffer is full.
func (p *Pool[In, Out]) Submit(item WorkItem[In]) {
	p.workChan <- item
}

// Close stops accepting work, waits for every worker to finish and then
// closes the result channel. Close blocks while results fill the buffer
// unread, so either size the buffer for every item or drain Results
// concurrently.
func (p *Pool[In, Out]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool[In, Out]) Results() <-chan ProcessResult[Out] {
	return p.resultChan
}
