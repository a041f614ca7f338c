package outcome

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type testMeta struct {
	proto  string
	status int
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(5)
	if !r.IsSuccess() || r.IsFailure() || r.IsEmpty() {
		t.Fatalf("expected success variant, got: success=%v failure=%v empty=%v", r.IsSuccess(), r.IsFailure(), r.IsEmpty())
	}
	if r.Value() != 5 {
		t.Fatalf("expected value 5, got %d", r.Value())
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error, got %v", r.Err())
	}
	if r.HasMeta() {
		t.Fatalf("expected no metadata on plain success")
	}
	if r.CreatedAt().IsZero() || r.CreatedAt().Location() != time.UTC {
		t.Fatalf("expected UTC creation time, got %v", r.CreatedAt())
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Fail[int](boom)
	if r.IsSuccess() || !r.IsFailure() || r.IsEmpty() {
		t.Fatalf("expected failure variant, got: success=%v failure=%v empty=%v", r.IsSuccess(), r.IsFailure(), r.IsEmpty())
	}
	if r.Err() != boom {
		t.Fatalf("expected the original error value, got %v", r.Err())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value payload, got %d", r.Value())
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var r Result[string]
	if !r.IsEmpty() || r.IsSuccess() || r.IsFailure() {
		t.Fatalf("zero value must be empty, got: success=%v failure=%v empty=%v", r.IsSuccess(), r.IsFailure(), r.IsEmpty())
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	if r := Of(7, nil); !r.IsSuccess() || r.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v val=%v err=%v", r.IsSuccess(), r.Value(), r.Err())
	}

	boom := errors.New("boom")
	if r := Of(7, boom); !r.IsFailure() || r.Err() != boom {
		t.Fatalf("expected failure 'boom', got: success=%v err=%v", r.IsSuccess(), r.Err())
	}
}

type nilishError struct{}

func (*nilishError) Error() string { return "nilish" }

func TestOf_TypedNilError(t *testing.T) {
	t.Parallel()

	var perr *nilishError
	var err error = perr // non-nil interface holding a nil pointer

	r := Of(3, err)
	if !r.IsSuccess() || r.Value() != 3 {
		t.Fatalf("typed-nil error must count as success, got: success=%v err=%v", r.IsSuccess(), r.Err())
	}
}

func TestEval(t *testing.T) {
	t.Parallel()

	calls := 0
	r := Eval(func() (int, error) {
		calls++
		return 42, nil
	})
	if calls != 1 {
		t.Fatalf("expected op to run exactly once, ran %d times", calls)
	}
	if !r.IsSuccess() || r.Value() != 42 {
		t.Fatalf("expected success with 42, got: success=%v val=%v", r.IsSuccess(), r.Value())
	}

	boom := errors.New("boom")
	r = Eval(func() (int, error) { return 0, boom })
	if !r.IsFailure() || r.Err() != boom {
		t.Fatalf("expected failure with the raised error, got: success=%v err=%v", r.IsSuccess(), r.Err())
	}
}

func TestWithMeta(t *testing.T) {
	t.Parallel()

	m := testMeta{proto: "h2", status: 200}
	r := Success("body").WithMeta(m)
	if !r.HasMeta() {
		t.Fatalf("expected metadata to be attached")
	}
	if got, ok := r.Meta().(testMeta); !ok || got != m {
		t.Fatalf("expected metadata %v, got %v", m, r.Meta())
	}

	// metadata accompanies success only
	f := Fail[string](errors.New("boom")).WithMeta(m)
	if f.HasMeta() || f.Meta() != nil {
		t.Fatalf("expected no metadata on failure, got %v", f.Meta())
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	v, err := Success(9).Unwrap()
	if v != 9 || err != nil {
		t.Fatalf("expected (9, nil), got (%v, %v)", v, err)
	}

	boom := errors.New("boom")
	v, err = Fail[int](boom).Unwrap()
	if v != 0 || err != boom {
		t.Fatalf("expected (0, boom) with the original error, got (%v, %v)", v, err)
	}
}

func TestMust(t *testing.T) {
	t.Parallel()

	if got := Success("ok").Must(); got != "ok" {
		t.Fatalf("expected 'ok', got %q", got)
	}

	boom := errors.New("boom")
	defer func() {
		if rec := recover(); rec != boom {
			t.Fatalf("expected panic with the stored error, got %v", rec)
		}
	}()
	Fail[string](boom).Must()
}

func TestIDAndProvenance(t *testing.T) {
	t.Parallel()

	a := Success(1)
	b := Success(1)
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct ids per constructed result")
	}
}

func TestConstructExample(t *testing.T) {
	t.Parallel()

	// construct(() => 42, meta) -> Success(42, meta); map(+1) -> Success(43, meta); unwrap -> 43
	m := testMeta{proto: "h1", status: 204}
	r := Eval(func() (int, error) { return 42, nil }).WithMeta(m)

	mapped := Map(r, func(v int) int { return v + 1 })
	if !mapped.IsSuccess() || mapped.Value() != 43 {
		t.Fatalf("expected Success(43), got: success=%v val=%v", mapped.IsSuccess(), mapped.Value())
	}
	if got, ok := mapped.Meta().(testMeta); !ok || got != m {
		t.Fatalf("expected metadata preserved through map, got %v", mapped.Meta())
	}
	if v, err := mapped.Unwrap(); v != 43 || err != nil {
		t.Fatalf("expected unwrap to yield 43, got (%v, %v)", v, err)
	}
}

func TestConstructFailureExample(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("not found")
	r := Eval(func() (int, error) { return 0, notFound })

	mapped := Map(r, func(v int) int { return v + 1 })
	if !mapped.IsFailure() || mapped.Err() != notFound {
		t.Fatalf("expected unchanged failure, got: success=%v err=%v", mapped.IsSuccess(), mapped.Err())
	}
	if _, err := mapped.Unwrap(); err != notFound {
		t.Fatalf("expected unwrap to re-raise the original error, got %v", err)
	}
}
