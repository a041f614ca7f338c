// Package chain provides a fluent wrapper around outcome.Result[T]
// for building synchronous error-aware chains on top of pipe primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/Eval: begin a chain from a Result[T], a value, or an operation
// - Then: switch to a new result via a function
// - ThenTry: call a function (T, error) and convert error to failure
// - Map: transform the successful value
// - Validate: fail the chain when a predicate rejects the value
// - MapErr/Recover: rewrite or replace the failure track
// - Ensure/Tee: run side effects without changing the result
// - While/RepeatUntil: loop a step under a condition
// - Or/And: combine chains by first success or first failure
// - Finally: collapse the chain into a final value via handlers
//
// Methods cover same-type steps; the package-level Then, ThenTry, Map and
// Finally move a chain between value types.
package chain
