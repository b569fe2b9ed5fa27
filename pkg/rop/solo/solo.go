package solo

import (
	"github.com/ib-77/rop-simplified/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](description string) rop.Result[T] {
	return rop.Fail[T](description)
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input rop.Result[T],
	validate func(in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(input.Value()); !isValid {
			return rop.Fail[T](errMsg)
		}
	}
	return input
}

// ValidateAll applies validators in order and stops at the first failure.
func ValidateAll[T any](input rop.Result[T],
	validators ...func(in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	current := input
	for _, validate := range validators {
		if !current.IsSuccess() {
			return current
		}
		current = validate(current)
	}
	return current
}

func Switch[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Value()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Value())
		return rop.FromError(out, err)
	}
	return rop.FailFrom[In, Out](input)
}

func FailOnError[T any](input rop.Result[T],
	maybeErr func(in T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(input.Value()); !rop.IsNil(err) {
			return rop.Fail[T](err.Error())
		}
	}
	return input
}

func Tee[T any](input rop.Result[T],
	onSuccess func(r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(input)
	}
	return input
}

func TeeIf[T any](input rop.Result[T],
	condition func(r rop.Result[T]) bool,
	onSuccessAndCondition func(r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() && condition(input) {
		onSuccessAndCondition(input)
	}
	return input
}

// DoubleTee runs onSuccess or onFailure depending on the state of input.
// Nil handlers are skipped.
func DoubleTee[T any](input rop.Result[T],
	onSuccess func(r T),
	onFailure func(description string)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Value())
		}
	} else if onFailure != nil {
		onFailure(input.ErrorDescription())
	}
	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onFailure func(description string) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.ErrorDescription())
}
