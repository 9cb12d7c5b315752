// Package worker runs per-article evaluation concurrently while
// keeping results aligned with input indices, so batch output order
// never depends on goroutine scheduling.
package worker

import (
	"context"
	"runtime"
	"sync"

	"github.com/ahidayatxx/evidentia/internal/model"
)

// Pool bounds the number of concurrent article evaluations.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given concurrency. Non-positive
// values fall back to the CPU count.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Workers reports the configured concurrency.
func (p *Pool) Workers() int {
	return p.workers
}

// Map applies fn to every article and writes each result into the slot
// matching its input index. Each goroutine owns exactly one slot, so no
// synchronization beyond the WaitGroup is needed. On context
// cancellation remaining slots keep their input article unchanged.
func (p *Pool) Map(ctx context.Context, articles []model.Article, fn func(model.Article) model.Article) []model.Article {
	if len(articles) == 0 {
		return []model.Article{}
	}

	results := make([]model.Article, len(articles))
	semaphore := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, article := range articles {
		wg.Add(1)
		go func(idx int, a model.Article) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = a
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = fn(a)
		}(i, article)
	}

	wg.Wait()
	return results
}
