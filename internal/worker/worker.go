// Package worker runs short background jobs, mainly confirmation mail
// sends, off the request path.
package worker

import "sync"

// Task is a queued unit of work.
type Task func()

// Pool executes tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

type pool struct {
	queue chan Task
	wg    sync.WaitGroup
}

// NewPool starts n workers; n <= 0 is treated as 1. Submit blocks once the
// backlog fills, which keeps a burst of sends from growing without bound.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{queue: make(chan Task, 16)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.drain()
	}
	return p
}

func (p *pool) drain() {
	defer p.wg.Done()
	for task := range p.queue {
		if task != nil {
			task()
		}
	}
}

func (p *pool) Submit(task Task) {
	p.queue <- task
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}
