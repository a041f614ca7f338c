package outcome

// Map transforms the success value with a function that cannot fail, carrying
// the input's metadata forward. A failure passes through re-typed with the
// same error value.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if r.isSuccess {
		return Success(f(r.value)).WithMeta(r.meta)
	}
	return Fail[Out](r.err)
}

// Try transforms the success value with a fallible function. An error from f
// fails the produced result; otherwise the input's metadata is carried
// forward.
func Try[In, Out any](r Result[In], f func(In) (Out, error)) Result[Out] {
	if !r.isSuccess {
		return Fail[Out](r.err)
	}
	out, err := f(r.value)
	if err != nil {
		return Fail[Out](err)
	}
	return Success(out).WithMeta(r.meta)
}

// Switch moves from Result[In] to Result[Out] via a function that builds the
// whole result itself; metadata attached by f wins over the input's.
func Switch[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if !r.isSuccess {
		return Fail[Out](r.err)
	}
	return f(r.value)
}

// Map is the same-type form of the package-level Map.
func (r Result[T]) Map(f func(T) T) Result[T] {
	return Map(r, f)
}

// Try is the same-type form of the package-level Try.
func (r Result[T]) Try(f func(T) (T, error)) Result[T] {
	return Try(r, f)
}

// Then switches to the result built by f when r is a success.
func (r Result[T]) Then(f func(T) Result[T]) Result[T] {
	return Switch(r, f)
}

// MapErr replaces the stored error of a failure. A success passes through
// unchanged, value and metadata intact.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if !r.IsFailure() {
		return r
	}
	return Fail[T](f(r.err))
}

// OrElse replaces a failure with whatever f builds, including a recovery back
// to success. A success passes through unchanged.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if !r.IsFailure() {
		return r
	}
	return f(r.err)
}

// Tee invokes f with the success value and its metadata for the side effect
// only; the receiver is returned unchanged.
func (r Result[T]) Tee(f func(T, Meta)) Result[T] {
	if r.isSuccess {
		f(r.value, r.meta)
	}
	return r
}

// TeeErr invokes f with the failure error for the side effect only; the
// receiver is returned unchanged.
func (r Result[T]) TeeErr(f func(error)) Result[T] {
	if r.IsFailure() {
		f(r.err)
	}
	return r
}

// IfSuccess invokes f when r is a success; the receiver is returned
// unchanged.
func (r Result[T]) IfSuccess(f func()) Result[T] {
	if r.isSuccess {
		f()
	}
	return r
}

// IfFailure invokes f when r is a failure; the receiver is returned
// unchanged.
func (r Result[T]) IfFailure(f func()) Result[T] {
	if r.IsFailure() {
		f()
	}
	return r
}
