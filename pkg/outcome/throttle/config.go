package throttle

import (
	"time"

	"golang.org/x/time/rate"
)

// WhenFull is the type of behavior that occurs when too many tasks are
// pending on the throttle.
type WhenFull int

const (
	// BlockWhenFull exerts back pressure by blocking the caller when too
	// many tasks are pending.
	BlockWhenFull WhenFull = iota
	// ErrorWhenFull immediately returns an error when too many tasks are
	// pending.
	ErrorWhenFull
)

// A rate limit expressed as N tasks per second
type Limit = rate.Limit

// Every converts the provided duration into a number of tasks per second,
// for instance Every(100 * time.Millisecond) yields 10 tasks per second.
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts is used to configure a Throttle via the New function.
type Opts struct {
	// Limit is the rate limit expressed in tasks per second.
	Limit Limit
	// Burst is the size of the token bucket.
	Burst int
	// MaxPending controls the number of outstanding tasks that can be
	// submitted before the WhenFull behavior kicks in.
	MaxPending int
	// WhenFull determines the throttle's behavior when MaxPending is
	// exceeded. By default the throttle blocks the caller.
	WhenFull WhenFull
}

func (o Opts) validate() {
	if o.Limit < 0 {
		panic("throttle limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("throttle burst must be 1 or greater")
	}

	if o.MaxPending < 0 {
		panic("throttle max pending must be 0 or greater")
	}
}
