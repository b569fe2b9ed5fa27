// Package void provides Result, the payload-free counterpart of rop.Result[T].
// A void Result only records whether an operation succeeded and, if not, why.
//
// Constructors: Success, Fail, SuccessIf, FailIf, FromError, From.
// Combinators: ThenIf, ThenFailIf, OtherwiseIf, OtherwiseFailIf.
//
// Unlike rop.Result[T], the void combinators rebuild their output through
// SuccessIf/FailIf whenever their guard holds, so the returned Result is a new
// one even when its state matches the receiver.
package void
