package stream

import (
	"context"
	"sync"

	"github.com/arshiacont/outcome/pkg/outcome"
)

// CancelHandlers decide what happens to in-flight and remaining items when
// the context ends while a pipeline is running. Handlers may send to out;
// the consumer must then keep draining the output until it closes, or the
// workers cannot finish.
type CancelHandlers[In, Out any] struct {
	// OnHalt fires once per worker on shutdown and receives the input
	// channel with everything that was not picked up.
	OnHalt func(ctx context.Context, rest <-chan outcome.Result[In], out chan<- outcome.Result[Out])
	// OnUnprocessed fires for an item that was received but not run.
	OnUnprocessed func(ctx context.Context, in outcome.Result[In], out chan<- outcome.Result[Out])
	// OnProcessed fires for an item whose stage finished but whose result
	// lost the race against cancellation.
	OnProcessed func(ctx context.Context, in outcome.Result[In], processed outcome.Result[Out], out chan<- outcome.Result[Out])
}

func worker[In, Out any](ctx context.Context, in <-chan outcome.Result[In], out chan<- outcome.Result[Out],
	stage Stage[In, Out], handlers CancelHandlers[In, Out],
	onDeliver func(ctx context.Context, r outcome.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnHalt != nil {
				handlers.OnHalt(ctx, in, out)
			}
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnUnprocessed != nil {
					handlers.OnUnprocessed(ctx, r, out)
				}
				if handlers.OnHalt != nil {
					handlers.OnHalt(ctx, in, out)
				}
				return
			default:
			}

			pr := stage(ctx, r)

			select {
			case <-ctx.Done():
				if handlers.OnProcessed != nil {
					handlers.OnProcessed(ctx, r, pr, out)
				}
				if handlers.OnHalt != nil {
					handlers.OnHalt(ctx, in, out)
				}
				return
			case out <- pr:
				if onDeliver != nil {
					onDeliver(ctx, pr)
				}
			}
		}
	}
}

// Run fans the input channel out to workers applying a same-type stage and
// fans the results back into one output channel. Output order follows
// processing completion, not input order, when workers > 1.
func Run[T any](ctx context.Context, in <-chan outcome.Result[T], stage Stage[T, T],
	workers int) <-chan outcome.Result[T] {
	return TurnoutWith(ctx, in, stage, CancelHandlers[T, T]{}, nil, workers)
}

// RunWith is Run with cancel handlers and a delivery callback.
func RunWith[T any](ctx context.Context, in <-chan outcome.Result[T], stage Stage[T, T],
	handlers CancelHandlers[T, T], onDeliver func(ctx context.Context, r outcome.Result[T]),
	workers int) <-chan outcome.Result[T] {
	return TurnoutWith(ctx, in, stage, handlers, onDeliver, workers)
}

// RunSingle runs a same-type stage on one worker, preserving input order.
func RunSingle[T any](ctx context.Context, in <-chan outcome.Result[T], stage Stage[T, T],
	handlers CancelHandlers[T, T], onDeliver func(ctx context.Context, r outcome.Result[T])) <-chan outcome.Result[T] {
	return TurnoutWith(ctx, in, stage, handlers, onDeliver, 1)
}

// Turnout is Run for a type-changing stage.
func Turnout[In, Out any](ctx context.Context, in <-chan outcome.Result[In], stage Stage[In, Out],
	workers int) <-chan outcome.Result[Out] {
	return TurnoutWith(ctx, in, stage, CancelHandlers[In, Out]{}, nil, workers)
}

// TurnoutWith drives a type-changing stage on the given number of workers
// with cancel handlers and a delivery callback. The output channel closes
// once every worker has finished.
func TurnoutWith[In, Out any](ctx context.Context, in <-chan outcome.Result[In], stage Stage[In, Out],
	handlers CancelHandlers[In, Out], onDeliver func(ctx context.Context, r outcome.Result[Out]),
	workers int) <-chan outcome.Result[Out] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan outcome.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker(ctx, in, out, stage, handlers, onDeliver, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
