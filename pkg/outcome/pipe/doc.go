// Package pipe contains single-value, synchronous pipeline primitives that
// operate on outcome.Result[T]. These functions form the core building blocks
// for error-aware pipelines without channels; every step takes a
// context.Context first so callers can thread cancellation through long
// chains.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values without changing the error track
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee/FailOnError: side-effect and guard helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Join: fold a result through a sequence of steps with an accumulator
package pipe
