package outcome

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether err is nil, including a typed-nil pointer stored in
// the interface.
func IsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Errors flattens an errors.Join aggregate into its parts. A plain error
// comes back as a single-element slice, a nil error as an empty one.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCanceled reports whether err stems from context cancellation or an
// expired deadline.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
