package future

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/arshiacont/outcome/pkg/outcome"
)

var (
	// ErrCanceled is the error carried by a future that was settled by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// Op is the function signature required to create a Future via Eval
type Op[T any] func(ctx context.Context) (T, error)

// Future represents an asynchronous computation that settles with an
// outcome.Result[T]. A future can be created and then passed around and read
// by multiple consumers, which is the key difference to using a bare channel:
// a channel value can only be received once.
//
// Once created, a future settles exactly once. The first settlement wins and
// all later settlements are silently ignored. Settle, Succeed, SucceedMeta,
// Fail and Cancel all settle a future.
//
// Get extracts the result. If the future has not settled yet, Get blocks
// until it settles or until the provided context is done. Get can be called
// from multiple goroutines simultaneously and they all receive the same
// result.
type Future[T any] struct {
	settled uint32
	done    chan struct{}

	res outcome.Result[T]
}

// New creates an unsettled Future that must be settled manually.
func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// Eval creates a Future and runs op asynchronously; the future settles with
// the operation's outcome. A context that is already done settles the future
// immediately without calling op.
func Eval[T any](ctx context.Context, op Op[T]) *Future[T] {
	f := New[T]()

	if err := ctx.Err(); err != nil {
		f.Settle(outcome.Fail[T](err))
		return f
	}

	go func() {
		f.Settle(outcome.Of(op(ctx)))
	}()

	return f
}

// Settle completes the future with r. It reports whether this call was the
// one that settled the future; later calls are ignored.
func (f *Future[T]) Settle(r outcome.Result[T]) bool {
	if atomic.CompareAndSwapUint32(&f.settled, 0, 1) {
		f.res = r
		close(f.done)
		return true
	}
	return false
}

// Succeed settles the future with a successful value.
func (f *Future[T]) Succeed(v T) bool {
	return f.Settle(outcome.Success(v))
}

// SucceedMeta settles the future with a successful value carrying metadata.
func (f *Future[T]) SucceedMeta(v T, m outcome.Meta) bool {
	return f.Settle(outcome.Success(v).WithMeta(m))
}

// Fail settles the future with a failure.
func (f *Future[T]) Fail(err error) bool {
	return f.Settle(outcome.Fail[T](err))
}

// Cancel settles the future with ErrCanceled.
func (f *Future[T]) Cancel() bool {
	return f.Fail(ErrCanceled)
}

// Get returns the settled result. If the future is not settled yet, Get
// blocks until it settles or ctx is done. A context abort does not settle
// the future; it only fails this call, so other readers still receive the
// eventual result.
func (f *Future[T]) Get(ctx context.Context) outcome.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return outcome.Fail[T](ctx.Err())
	}
}

// Done returns a channel that is closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
