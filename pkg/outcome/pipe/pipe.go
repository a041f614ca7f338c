package pipe

import (
	"context"
	"errors"

	"github.com/arshiacont/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.Result[T] {
	return outcome.Success(input)
}

func Fail[T any](err error) outcome.Result[T] {
	return outcome.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Result[T] {

	if input.IsSuccess() {
		if valid, errMsg := validate(ctx, input.Value()); valid {
			return input
		} else {
			return outcome.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input outcome.Result[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in outcome.Result[T]) outcome.Result[T]) outcome.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current outcome.Result[T]) outcome.Result[T] {

			if current.IsFailure() {
				e := outcome.Errors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if outcome.IsNil(err) {
				return current
			}

			return outcome.Fail[T](err)
		},
		validators...,
	)
}

func Switch[In, Out any](ctx context.Context,
	input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) outcome.Result[Out]) outcome.Result[Out] {

	return outcome.Switch(input, func(v In) outcome.Result[Out] {
		return onSuccess(ctx, v)
	})
}

func Map[In, Out any](ctx context.Context,
	input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out) outcome.Result[Out] {

	return outcome.Map(input, func(v In) Out {
		return onSuccess(ctx, v)
	})
}

func Try[In, Out any](ctx context.Context, input outcome.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Result[Out] {

	return outcome.Try(input, func(v In) (Out, error) {
		return onTryExecute(ctx, v)
	})
}

func Tee[T any](ctx context.Context,
	input outcome.Result[T],
	onSuccess func(ctx context.Context, r outcome.Result[T])) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input outcome.Result[T],
	condition func(ctx context.Context, r outcome.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r outcome.Result[T])) outcome.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input outcome.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err error)) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else if input.IsFailure() {
		onFailure(ctx, input.Err())
	}

	return input
}

func FailOnError[T any](ctx context.Context, input outcome.Result[T],
	maybeErr func(ctx context.Context, in T) error) outcome.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return outcome.Fail[T](err)
		}
		return input
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}

func Join[T any](ctx context.Context,
	input outcome.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current outcome.Result[T]) outcome.Result[T],
	steps ...func(ctx context.Context, in outcome.Result[T]) outcome.Result[T]) outcome.Result[T] {

	if len(steps) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, steps[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, step := range steps[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, step(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
