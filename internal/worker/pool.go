package worker

import (
	"context"
	"errors"
	"log"
	"sync"

	"resume-tailor-service/internal/service"
)

var (
	ErrStopped   = errors.New("worker pool stopped")
	ErrSaturated = errors.New("worker pool saturated")
)

// Pool runs generation tasks on a fixed set of workers. Submit never blocks
// on generation; the task channel is the only buffer. Queued and in-flight
// tasks are drained on shutdown.
type Pool struct {
	processor *Processor
	workers   int

	mu     sync.RWMutex
	closed bool
	tasks  chan service.GenerationTask
}

func NewPool(processor *Processor, workers int) *Pool {
	if workers <= 0 {
		workers = 4
	}
	return &Pool{
		processor: processor,
		workers:   workers,
		tasks:     make(chan service.GenerationTask, workers*16),
	}
}

// Submit queues a task for background processing.
func (p *Pool) Submit(task service.GenerationTask) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrStopped
	}
	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrSaturated
	}
}

// Run blocks until ctx is cancelled, then drains the task channel.
func (p *Pool) Run(ctx context.Context) {
	log.Printf("worker pool started: workers=%d", p.workers)

	// Tasks keep running through shutdown; the processor applies its own
	// per-task timeout.
	taskCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for task := range p.tasks {
				if err := p.processor.Process(taskCtx, task); err != nil {
					log.Printf("[worker-%d] id=%s process error=%v", n, task.ID, err)
				}
			}
		}(i + 1)
	}

	<-ctx.Done()

	p.mu.Lock()
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	wg.Wait()
	log.Println("worker pool stopped")
}
