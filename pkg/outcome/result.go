package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Meta describes the transport context that produced a successful value,
// e.g. protocol-level response info. It travels alongside success values
// and is never inspected by this package.
type Meta any

// Result holds either the value of a completed operation or the error that
// failed it, never both. The zero value is empty (neither variant); build
// results through Success, Fail, Of or Eval.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	meta      Meta
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of wraps an already evaluated (value, error) pair. A nil error, including
// a typed-nil pointer stored in the interface, yields a success.
func Of[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Success(v)
	}
	return Fail[T](err)
}

// Eval runs op exactly once, synchronously, and captures its outcome.
func Eval[T any](op func() (T, error)) Result[T] {
	return Of(op())
}

// WithMeta returns a copy of r carrying m. Metadata accompanies success
// values only; on anything else WithMeta returns r unchanged.
func (r Result[T]) WithMeta(m Meta) Result[T] {
	if !r.isSuccess {
		return r
	}
	r.meta = m
	return r
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Meta() Meta {
	return r.meta
}

func (r Result[T]) HasMeta() bool {
	return r.meta != nil
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && r.err == nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// Unwrap returns the success value or the stored error, exactly as captured.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Must returns the success value and panics with the stored error otherwise.
func (r Result[T]) Must() T {
	if r.isSuccess {
		return r.value
	}
	if r.err != nil {
		panic(r.err)
	}
	panic("outcome: Must on empty result")
}
