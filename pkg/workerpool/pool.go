// Package workerpool bounds the concurrency of batch report generation.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs submitted tasks on a fixed set of worker goroutines. Workers
// start lazily on first submit; Close drains the queue before returning.
type Pool struct {
	workers int32
	running int32
	closed  atomic.Bool
	tasks   chan func()
	wg      sync.WaitGroup
}

// New creates a pool with the given worker count. Zero or negative falls
// back to GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		workers: int32(workers),
		tasks:   make(chan func(), workers*4),
	}
}

// Submit queues a task for execution. Returns false if the pool is closed.
func (p *Pool) Submit(task func()) bool {
	if p.closed.Load() {
		return false
	}

	for {
		running := atomic.LoadInt32(&p.running)
		if running >= p.workers {
			break
		}
		if atomic.CompareAndSwapInt32(&p.running, running, running+1) {
			p.wg.Add(1)
			go p.worker()
			break
		}
	}

	p.tasks <- task
	return true
}

func (p *Pool) worker() {
	defer func() {
		atomic.AddInt32(&p.running, -1)
		p.wg.Done()
	}()
	for task := range p.tasks {
		if task != nil {
			task()
		}
	}
}

// ForEach runs fn for each index 0..n-1 on the pool and blocks until all
// iterations finish.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		idx := i
		if !p.Submit(func() {
			defer wg.Done()
			fn(idx)
		}) {
			wg.Done()
		}
	}
	wg.Wait()
}

// Running returns the current worker count.
func (p *Pool) Running() int {
	return int(atomic.LoadInt32(&p.running))
}

// Close stops accepting tasks and waits for queued work to finish.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	close(p.tasks)
	p.wg.Wait()
}
