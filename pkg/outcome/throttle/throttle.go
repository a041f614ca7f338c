package throttle

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/arshiacont/outcome/pkg/outcome"
	"github.com/arshiacont/outcome/pkg/outcome/future"
)

// RunFunc evaluates a single task.
type RunFunc[T any, R any] func(ctx context.Context, task T) (R, error)

// Throttle dispatches submitted tasks at a bounded rate. Each task settles
// a future, so callers can block for the outcome or keep the future and
// collect later.
type Throttle[T any, R any] struct {
	limiter *rate.Limiter
	queue   chan pending[T, R]

	submit submitFunc[T, R]
	run    RunFunc[T, R]
}

// New creates a Throttle running tasks through run. Invalid Opts panic.
func New[T any, R any](opts Opts, run RunFunc[T, R]) *Throttle[T, R] {
	opts.validate()

	th := &Throttle[T, R]{
		limiter: rate.NewLimiter(opts.Limit, opts.Burst),
		queue:   make(chan pending[T, R], opts.MaxPending),
		submit:  submitFor[T, R](opts.WhenFull),
		run:     run,
	}

	th.startDispatcher()

	return th
}

func (th *Throttle[T, R]) startDispatcher() {
	go func() {
		for {
			p, ok := <-th.queue
			if !ok {
				return
			}

			if err := th.limiter.Wait(p.ctx); err != nil {
				p.fut.Fail(err)
				continue
			}

			th.runTask(p)
		}
	}()
}

func (th *Throttle[T, R]) runTask(p pending[T, R]) {
	go func() {
		p.fut.Settle(outcome.Of(th.run(p.ctx, p.task)))
	}()
}

// Submit enqueues the task and blocks until its outcome is settled or ctx
// ends.
func (th *Throttle[T, R]) Submit(ctx context.Context, task T) outcome.Result[R] {
	f := th.SubmitF(ctx, task)
	return f.Get(ctx)
}

// SubmitF enqueues the task and returns the future it will settle. A task
// rejected by the when-full strategy settles the future immediately with
// the rejection error.
func (th *Throttle[T, R]) SubmitF(ctx context.Context, task T) *future.Future[R] {
	p := newPending[T, R](ctx, task)

	if err := th.submit(th.queue, p); err != nil {
		p.fut.Fail(err)
	}

	return p.fut
}

// WARNING: if Close is called twice, or Submit is called after Close, it
// will panic.
func (th *Throttle[T, R]) Close() {
	close(th.queue)
}
