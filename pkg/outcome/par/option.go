package par

import (
	"runtime"
	"time"
)

// option is option for [Map], [MapE] and [Run].
type option struct {
	procs   int
	timeout time.Duration
}

// Option is option for [Map], [MapE] and [Run].
type Option func(*option)

// default max num of parallel operations
var ProcsDefault = 1

// Procs specifies max num of parallel operations.
func Procs(n int) Option {
	return func(o *option) {
		o.procs = n
	}
}

// ProcsNumCPU sets [runtime.NumCPU] to [Procs].
func ProcsNumCPU() Option {
	return Procs(runtime.NumCPU())
}

// OpTimeout specifies timeout of a single operation.
//
// If 0 or less is specified, no timeout is set.
func OpTimeout(d time.Duration) Option {
	return func(o *option) {
		o.timeout = d
	}
}

func newOption(opts []Option) *option {
	o := new(option)
	for _, opt := range opts {
		opt(o)
	}
	if o.procs < 1 {
		o.procs = ProcsDefault
	}
	return o
}
