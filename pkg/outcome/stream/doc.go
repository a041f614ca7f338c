// Package stream runs error-aware pipelines over channels of results with
// controlled concurrency. Sources emit results, stages transform them,
// workers fan stages out and back in, and sinks collapse the output.
//
// Highlights:
// - FromValues/FromSlice/FromSliceWith/FromResults: feed a pipeline
// - Stage and the ValidateStage/SwitchStage/MapStage/TryStage/TeeStage lifts
// - Run/RunSingle/Turnout: drive a stage on n workers (Turnout changes type)
// - RunWith/TurnoutWith: add CancelHandlers and a delivery callback
// - FailRemaining/FailRemainingOne/DeliverProcessed: prebuilt cancel behavior
// - Finalize/FinalizeWith: reduce results to plain values
// - Collect/First: consume an output channel
//
// Cancel handlers send on the pipeline's output channel. A consumer that
// stops reading on the same canceled context would strand them, so pair
// handlers with a consumer that drains until close, e.g. a for-range or
// Collect on a fresh context.
package stream
