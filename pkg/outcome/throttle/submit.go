package throttle

import (
	"context"
	"errors"

	"github.com/arshiacont/outcome/pkg/outcome/future"
)

// ErrQueueFull is returned by the ErrorWhenFull strategy when a task cannot
// be enqueued.
var ErrQueueFull = errors.New("throttle queue is full")

type pending[T, R any] struct {
	ctx  context.Context
	task T
	fut  *future.Future[R]
}

func newPending[T, R any](ctx context.Context, task T) pending[T, R] {
	return pending[T, R]{
		ctx:  ctx,
		task: task,
		fut:  future.New[R](),
	}
}

type submitFunc[T, R any] func(queue chan<- pending[T, R], p pending[T, R]) error

func submitFor[T, R any](strategy WhenFull) submitFunc[T, R] {
	switch strategy {
	case BlockWhenFull:
		return blockWhenFull[T, R]
	case ErrorWhenFull:
		return errorWhenFull[T, R]
	default:
		panic("throttle: unknown when-full strategy")
	}
}

func blockWhenFull[T, R any](queue chan<- pending[T, R], p pending[T, R]) error {
	select {
	case queue <- p:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

func errorWhenFull[T, R any](queue chan<- pending[T, R], p pending[T, R]) error {
	select {
	case queue <- p:
		return nil
	default:
		return ErrQueueFull
	}
}
