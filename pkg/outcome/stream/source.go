package stream

import (
	"context"

	"github.com/arshiacont/outcome/pkg/outcome"
	"github.com/arshiacont/outcome/pkg/outcome/pipe"
)

// SourceHandlers observe the lifecycle of a source feeding a pipeline.
type SourceHandlers[T any] struct {
	// OnStartFail fires when the context is already done before anything
	// was emitted.
	OnStartFail func(ctx context.Context, input []T)
	// OnEmit fires after a value was handed to the pipeline.
	OnEmit func(ctx context.Context, v T)
	// OnBreak fires when the context ends mid-emission; rest holds the
	// values that never entered the pipeline.
	OnBreak func(ctx context.Context, rest []T)
}

// FromValues emits the given values as successful results and closes the
// channel.
func FromValues[T any](ctx context.Context, values ...T) <-chan outcome.Result[T] {
	return FromSliceWith(ctx, SourceHandlers[T]{}, values)
}

// FromSlice emits the slice values as successful results and closes the
// channel.
func FromSlice[T any](ctx context.Context, values []T) <-chan outcome.Result[T] {
	return FromSliceWith(ctx, SourceHandlers[T]{}, values)
}

// FromSliceWith is FromSlice with lifecycle handlers.
func FromSliceWith[T any](ctx context.Context, handlers SourceHandlers[T], values []T) <-chan outcome.Result[T] {
	in := make(chan outcome.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- pipe.Succeed(v):
				if handlers.OnEmit != nil {
					handlers.OnEmit(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// FromResults feeds pre-built results into a pipeline, failures included.
func FromResults[T any](ctx context.Context, rs ...outcome.Result[T]) <-chan outcome.Result[T] {
	in := make(chan outcome.Result[T])

	go func() {
		defer close(in)

		for _, r := range rs {
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}
