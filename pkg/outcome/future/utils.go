package future

import (
	"context"

	"github.com/arshiacont/outcome/pkg/outcome"
)

// All waits for every future to settle and returns the results in the order
// of the provided slice. If ctx is done before all futures settle, All
// returns nil and the context error.
func All[T any](ctx context.Context, fs []*Future[T]) ([]outcome.Result[T], error) {
	res := make([]outcome.Result[T], 0, len(fs))

	for _, f := range fs {
		res = append(res, f.Get(ctx))
		// ctx is checked after Get so a cancellation racing the final
		// Get does not drop an already settled value
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}

// AllSettled waits for every future and keeps per-future outcomes even when
// some of them were aborted by ctx; a done context shows up as failed
// entries instead of a global error.
func AllSettled[T any](ctx context.Context, fs []*Future[T]) []outcome.Result[T] {
	res := make([]outcome.Result[T], 0, len(fs))

	for _, f := range fs {
		res = append(res, f.Get(ctx))
	}

	return res
}
