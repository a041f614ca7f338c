package stream

import "context"

// Collect drains the channel into a slice until it closes or ctx ends.
func Collect[V any](ctx context.Context, ch <-chan V) []V {
	res := make([]V, 0)

	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// First returns the first value received from the channel, or defaultV when
// the channel closes empty or ctx ends first.
func First[V any](ctx context.Context, ch <-chan V, defaultV V) V {
	select {
	case v, ok := <-ch:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
