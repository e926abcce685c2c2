package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// TaskRunner runs work after the triggering request has committed. Task
// errors are logged and never reach the caller.
type TaskRunner interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}

type AsyncRunner struct {
	wg     sync.WaitGroup
	logger *zap.Logger
}

func NewAsyncRunner(logger *zap.Logger) *AsyncRunner {
	return &AsyncRunner{
		logger: logger.With(zap.String("component", "tasks")),
	}
}

// Go starts fn in its own goroutine with ctx detached from cancellation,
// so a finished HTTP request does not abort its notifications.
func (r *AsyncRunner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error("task panicked", zap.String("task", name), zap.String("panic", fmt.Sprint(p)))
			}
		}()

		if err := fn(detached); err != nil {
			r.logger.Error("task failed", zap.String("task", name), zap.Error(err))
			return
		}
		r.logger.Debug("task finished", zap.String("task", name))
	}()
}

// Wait blocks until every started task returns or ctx is done.
func (r *AsyncRunner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
