package stream

import (
	"context"

	"github.com/arshiacont/outcome/pkg/outcome"
	"github.com/arshiacont/outcome/pkg/outcome/pipe"
)

// Stage is a single pipeline step: it receives one settled result and
// produces the next one. Stages are plain functions; the workers drive
// them and own all channel traffic.
type Stage[In, Out any] func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out]

// ValidateStage lifts a validation predicate into a stage.
func ValidateStage[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return func(ctx context.Context, in outcome.Result[T]) outcome.Result[T] {
		return pipe.AndValidate(ctx, in, validate)
	}
}

// SwitchStage lifts a result-returning function into a stage.
func SwitchStage[In, Out any](onSuccess func(ctx context.Context, r In) outcome.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out] {
		return pipe.Switch(ctx, in, onSuccess)
	}
}

// MapStage lifts a pure transformation into a stage.
func MapStage[In, Out any](onSuccess func(ctx context.Context, r In) Out) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out] {
		return pipe.Map(ctx, in, onSuccess)
	}
}

// TryStage lifts a function returning (Out, error) into a stage.
func TryStage[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out] {
		return pipe.Try(ctx, in, onTryExecute)
	}
}

// TeeStage lifts a side effect on successful results into a stage.
func TeeStage[T any](sideEffect func(ctx context.Context, r outcome.Result[T])) Stage[T, T] {
	return func(ctx context.Context, in outcome.Result[T]) outcome.Result[T] {
		return pipe.Tee(ctx, in, sideEffect)
	}
}

// DoubleTeeStage lifts success and failure side effects into a stage.
func DoubleTeeStage[T any](onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err error)) Stage[T, T] {
	return func(ctx context.Context, in outcome.Result[T]) outcome.Result[T] {
		return pipe.DoubleTee(ctx, in, onSuccess, onFailure)
	}
}
