// Package throttle runs submitted tasks at a bounded rate using a token
// bucket, settling one future per task with an outcome.Result.
//
// Highlights:
// - New: build a Throttle from Opts (limit, burst, queue depth, full behavior)
// - Submit: enqueue and block for the task's outcome
// - SubmitF: enqueue and keep the future for later collection
// - BlockWhenFull/ErrorWhenFull: back-pressure strategies for a full queue
// - Limit/Every: rate expressed in tasks per second
package throttle
