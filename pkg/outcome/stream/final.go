package stream

import (
	"context"

	"github.com/arshiacont/outcome/pkg/outcome"
	"github.com/arshiacont/outcome/pkg/outcome/pipe"
)

// FinalHandlers reduce each result of a finished pipeline to a plain value.
type FinalHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, v In) Out
	OnFailure func(ctx context.Context, err error) Out
}

// Finalize collapses a channel of results into a channel of plain values by
// applying the success or failure handler to each one.
func Finalize[In, Out any](ctx context.Context, in <-chan outcome.Result[In],
	handlers FinalHandlers[In, Out]) <-chan Out {
	return FinalizeWith(ctx, in, handlers, nil)
}

// FinalizeWith is Finalize with a delivery callback invoked after each
// value reaches the output channel.
func FinalizeWith[In, Out any](ctx context.Context, in <-chan outcome.Result[In],
	handlers FinalHandlers[In, Out], onDeliver func(ctx context.Context, out Out)) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				v := pipe.Finally(ctx, r, handlers.OnSuccess, handlers.OnFailure)

				select {
				case <-ctx.Done():
					return
				case out <- v:
					if onDeliver != nil {
						onDeliver(ctx, v)
					}
				}
			}
		}
	}()

	return out
}
