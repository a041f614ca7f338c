package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFuture(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Succeed(1)
		f.Succeed(2)
		f.Succeed(3)
	}()

	res := f.Get(context.TODO())
	require.True(res.IsSuccess())
	require.Equal(1, res.Value())
}

func TestSettleReportsWinner(t *testing.T) {
	require := require.New(t)

	f := New[int]()
	require.True(f.Succeed(1))
	require.False(f.Succeed(2))
	require.False(f.Fail(errors.New("late")))

	res := f.Get(context.TODO())
	require.Equal(1, res.Value())
}

func TestSettleConcurrent(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			f.Succeed(42)
		}()
	}

	res := f.Get(context.TODO())
	require.True(res.IsSuccess())
	require.Equal(42, res.Value())
}

func TestCancel(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Cancel()
		}()
	}

	res := f.Get(context.TODO())
	require.True(res.IsFailure())
	require.ErrorIs(res.Err(), ErrCanceled)
}

func TestFail(t *testing.T) {
	require := require.New(t)

	testErr := errors.New("test error")

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Fail(testErr)
		}()
	}

	res := f.Get(context.TODO())
	require.ErrorIs(res.Err(), testErr)
}

func TestSucceedMeta(t *testing.T) {
	require := require.New(t)

	f := New[string]()
	f.SucceedMeta("body", "header")

	res := f.Get(context.TODO())
	require.True(res.IsSuccess())
	require.Equal("body", res.Value())
	require.Equal("header", res.Meta())
}

func TestCancelOnGet(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	res := f.Get(ctx)
	require.ErrorIs(res.Err(), context.Canceled)

	// the aborted Get did not settle the future; a later reader still
	// receives the real result
	f.Succeed(5)
	res = f.Get(context.TODO())
	require.True(res.IsSuccess())
	require.Equal(5, res.Value())
}

func TestEval(t *testing.T) {
	require := require.New(t)

	f := Eval(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 7, nil
	})

	res := f.Get(context.TODO())
	require.True(res.IsSuccess())
	require.Equal(7, res.Value())
}

func TestEval_Error(t *testing.T) {
	require := require.New(t)

	testErr := errors.New("eval failed")

	f := Eval(context.Background(), func(ctx context.Context) (int, error) {
		return 0, testErr
	})

	res := f.Get(context.TODO())
	require.True(res.IsFailure())
	require.ErrorIs(res.Err(), testErr)
}

func TestEval_ContextAlreadyDone(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	f := Eval(ctx, func(ctx context.Context) (int, error) {
		called = true
		return 1, nil
	})

	res := f.Get(context.TODO())
	require.False(called)
	require.ErrorIs(res.Err(), context.Canceled)
}

func TestDone(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	select {
	case <-f.Done():
		t.Fatal("future must not be done before settling")
	default:
	}

	f.Succeed(1)

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future must be done after settling")
	}

	require.Equal(1, f.Get(context.TODO()).Value())
}

func TestAll(t *testing.T) {
	require := require.New(t)

	f1 := Eval(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(6 * time.Millisecond)
		return 1, nil
	})

	f2 := Eval(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(4 * time.Millisecond)
		return 2, nil
	})

	f3 := Eval(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(2 * time.Millisecond)
		return 3, nil
	})

	rs, err := All(context.Background(), []*Future[int]{f1, f2, f3})
	require.NoError(err)
	require.Len(rs, 3)

	for i, want := range []int{1, 2, 3} {
		require.True(rs[i].IsSuccess())
		require.Equal(want, rs[i].Value())
	}
}

func TestAllCancellation(t *testing.T) {
	require := require.New(t)

	f1 := New[int]()
	f2 := New[int]()
	f3 := New[int]()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := All(ctx, []*Future[int]{f1, f2, f3})
	require.ErrorIs(err, context.Canceled)
}

func TestAllSettled_KeepsPartialResults(t *testing.T) {
	require := require.New(t)

	f1 := New[int]()
	f1.Succeed(1)
	f2 := New[int]() // never settles

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	rs := AllSettled(ctx, []*Future[int]{f1, f2})
	require.Len(rs, 2)
	require.True(rs[0].IsSuccess())
	require.Equal(1, rs[0].Value())
	require.True(rs[1].IsFailure())
	require.ErrorIs(rs[1].Err(), context.Canceled)
}
