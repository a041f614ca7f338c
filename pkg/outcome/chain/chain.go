package chain

import (
	"context"

	"github.com/arshiacont/outcome/pkg/outcome"
	"github.com/arshiacont/outcome/pkg/outcome/pipe"
)

// Chain wraps an outcome.Result with a context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

// Start creates a new chain from an outcome.Result
func Start[T any](ctx context.Context, r outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

// Eval runs op and starts the chain from its outcome. A context that is
// already done short-circuits to a failure without calling op.
func Eval[T any](ctx context.Context, op func(ctx context.Context) (T, error)) Chain[T] {
	if err := ctx.Err(); err != nil {
		return Start(ctx, outcome.Fail[T](err))
	}
	return Start(ctx, outcome.Of(op(ctx)))
}

// Result returns the underlying outcome.Result
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Unwrap exposes the chain outcome as a conventional (value, error) pair.
func (c Chain[T]) Unwrap() (T, error) {
	return c.res.Unwrap()
}

// Then composes functions that already return outcome.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Result[T]) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: pipe.Switch(c.ctx, c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: pipe.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: pipe.Map(c.ctx, c.res, onSuccess)}
}

// Validate fails the chain when the predicate rejects the current value
func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: pipe.AndValidate(c.ctx, c.res, validate)}
}

// MapErr rewrites the error of a failed chain, leaving successes untouched
func (c Chain[T]) MapErr(onFailure func(ctx context.Context, err error) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.MapErr(func(err error) error {
		return onFailure(c.ctx, err)
	})}
}

// Recover gives a failed chain a second chance; onFailure may return a
// fresh success or another failure
func (c Chain[T]) Recover(onFailure func(ctx context.Context, err error) outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.OrElse(func(err error) outcome.Result[T] {
		return onFailure(c.ctx, err)
	})}
}

// Tee observes the value and metadata of a successful chain
func (c Chain[T]) Tee(observe func(ctx context.Context, t T, m outcome.Meta)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.Tee(func(t T, m outcome.Meta) {
		observe(c.ctx, t, m)
	})}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if c.res.IsSuccess() && onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// While keeps applying onSuccess as long as the chain succeeds and the
// condition holds for the current value
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) outcome.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// RepeatUntil applies onSuccess at least once and stops as soon as the
// chain fails or until reports true for the current value
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) outcome.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if !c.res.IsSuccess() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if !c.res.IsSuccess() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// Or returns the first successful chain of c and alternative; when both
// failed, the earlier failure wins
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	hasFail := false
	var firstFail Chain[T]

	for _, ch := range candidates {
		if ch.res.IsSuccess() {
			return ch
		}
		if !hasFail && ch.res.IsFailure() {
			hasFail = true
			firstFail = ch
		}
	}

	if hasFail {
		return firstFail
	}
	return c
}

// And returns the first failed chain of c and required; when all
// succeeded, the last chain wins
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain to a final value, delegating to pipe.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return pipe.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// Then chains a function that moves the chain to a new value type.
// Methods cannot introduce type parameters, so the type-changing steps
// live as package functions.
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) outcome.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: pipe.Switch(c.ctx, c.res, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: pipe.Try(c.ctx, c.res, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: pipe.Map(c.ctx, c.res, onSuccess),
	}
}

// Finally collapses the chain into a final value of another type
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {
	return pipe.Finally(c.ctx, c.res, onSuccess, onFailure)
}
