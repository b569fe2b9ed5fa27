// Package solo contains single-value, synchronous primitives that operate
// on rop.Result[T]. They complement the combinator methods when a step has to
// change the payload type or call into error-returning code.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: fail on the first invalid check
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try/FailOnError: turn (Out, error) and error returns into failures
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
//
// Failures keep their description and identity when they cross a type change.
package solo
