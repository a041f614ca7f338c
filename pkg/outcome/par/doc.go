// Package par evaluates batches of independent operations with bounded
// parallelism, returning per-input outcomes in input order.
//
// Highlights:
// - Map: run f over a slice, one outcome.Result per input, failures isolated
// - Run: evaluate a slice of operations of the same result type
// - MapE: fail-fast variant that cancels the batch on the first error
// - Procs/ProcsNumCPU/OpTimeout: functional options for concurrency and per-op timeout
package par
