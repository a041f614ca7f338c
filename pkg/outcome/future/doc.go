// Package future provides a one-shot, multi-reader container for the result
// of an asynchronous computation. A Future settles exactly once with an
// outcome.Result[T]; every reader observes the same settled result, error
// identity and metadata included.
//
// Highlights:
// - New/Eval: create an unsettled future or run an operation asynchronously
// - Settle/Succeed/SucceedMeta/Fail/Cancel: settle the future (first one wins)
// - Get: block for the result with context-based abort per caller
// - Done: channel-based completion signal for select loops
// - All/AllSettled: resolve a batch of futures in order
package future
