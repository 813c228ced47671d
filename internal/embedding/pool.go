package embedding

import (
	"context"
	"sync"
)

type task func(ctx context.Context)

// pool runs embedding batch tasks on a bounded set of workers. Tasks
// write into slots they own, so no synchronization is needed on the
// result side.
type pool struct {
	workers int
	tasks   chan task
	wg      sync.WaitGroup
}

func newPool(workers, buffer int) *pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &pool{
		workers: workers,
		tasks:   make(chan task, buffer),
	}
}

func (p *pool) submit(t task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *pool) close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// run starts the workers and blocks until every submitted task finished
// or the context was canceled.
func (p *pool) run(ctx context.Context) {
	if p == nil {
		return
	}

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					t(ctx)
				}
			}
		}()
	}

	p.wg.Wait()
}
