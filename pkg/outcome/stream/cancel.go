package stream

import (
	"context"
	"errors"

	"github.com/arshiacont/outcome/pkg/outcome"
)

// ErrInterrupted marks items a canceled pipeline never evaluated.
var ErrInterrupted = errors.New("evaluation interrupted")

// FailRemaining drains the input and emits one failure per remaining item.
// Use it as OnHalt together with a consumer that keeps draining the output
// until it closes.
func FailRemaining[In, Out any](ctx context.Context, rest <-chan outcome.Result[In], out chan<- outcome.Result[Out]) {
	for r := range rest {
		out <- outcome.Fail[Out](failoverFrom(r))
	}
}

// FailRemainingOne emits a failure for a single item that was picked up but
// never ran. Use it as OnUnprocessed.
func FailRemainingOne[In, Out any](ctx context.Context, in outcome.Result[In], out chan<- outcome.Result[Out]) {
	out <- outcome.Fail[Out](failoverFrom(in))
}

// DeliverProcessed forwards a result whose stage finished but which lost
// the race against cancellation. Use it as OnProcessed so finished work is
// not dropped.
func DeliverProcessed[In, Out any](ctx context.Context, in outcome.Result[In], processed outcome.Result[Out], out chan<- outcome.Result[Out]) {
	out <- processed
}

// failoverFrom keeps an already-cancellation-shaped error, anything else
// becomes ErrInterrupted.
func failoverFrom[In any](r outcome.Result[In]) error {
	if err := r.Err(); err != nil && outcome.IsCanceled(err) {
		return err
	}
	return ErrInterrupted
}
