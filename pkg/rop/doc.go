// Package rop provides Result[T], a value that is either a success carrying a
// payload of type T or a failure carrying a single error description.
//
// Results are immutable and are meant to be chained:
// - Success/Fail/FromError: construct a Result[T]
// - ThenIf/ThenFailIf: re-validate a success, leave failures untouched
// - OtherwiseIf/OtherwiseFailIf: re-stamp a failure, leave successes untouched
//
// The first failure in a chain of Then* calls is the one observed at the end.
// No combinator turns a failed Result[T] back into a success.
//
// See package void for the variant without a payload and package solo for
// free-function pipeline helpers.
package rop
