package par

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arshiacont/outcome/pkg/outcome"
)

// Map applies f to every input with bounded parallelism and returns one
// outcome per input, at the index of the provided slice. Individual
// failures never abort the whole run; every input settles on its own track.
func Map[In, Out any](ctx context.Context, ins []In,
	f func(ctx context.Context, in In) (Out, error), opts ...Option) []outcome.Result[Out] {

	o := newOption(opts)
	res := make([]outcome.Result[Out], len(ins))

	g := new(errgroup.Group)
	g.SetLimit(o.procs)

	for i, in := range ins {
		i, in := i, in
		g.Go(func() error {
			res[i] = runOne(ctx, in, f, o)
			return nil
		})
	}

	_ = g.Wait()
	return res
}

// Run evaluates independent operations of the same result type with
// bounded parallelism.
func Run[T any](ctx context.Context, ops []func(ctx context.Context) (T, error),
	opts ...Option) []outcome.Result[T] {

	return Map(ctx, ops, func(ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
		return op(ctx)
	}, opts...)
}

// MapE is the fail-fast variant of Map: the first error cancels the
// remaining operations and is returned as a plain error.
func MapE[In, Out any](ctx context.Context, ins []In,
	f func(ctx context.Context, in In) (Out, error), opts ...Option) ([]Out, error) {

	o := newOption(opts)
	out := make([]Out, len(ins))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.procs)

	for i, in := range ins {
		i, in := i, in
		g.Go(func() error {
			r := runOne(gctx, in, f, o)
			if r.IsFailure() {
				return r.Err()
			}
			out[i] = r.Value()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func runOne[In, Out any](ctx context.Context, in In,
	f func(ctx context.Context, in In) (Out, error), o *option) outcome.Result[Out] {

	if err := ctx.Err(); err != nil {
		return outcome.Fail[Out](err)
	}

	opCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	return outcome.Of(f(opCtx, in))
}
