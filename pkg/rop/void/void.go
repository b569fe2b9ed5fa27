package void

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/rop-simplified/pkg/rop"
)

// Result is the outcome of an operation that produces no value.
type Result struct {
	id          uuid.UUID
	createdAt   time.Time
	description string
	isSuccess   bool
}

var _ rop.Outcome = Result{}

func Success() Result {
	return Result{
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail(description string) Result {
	return Result{
		description: description,
		isSuccess:   false,
		createdAt:   time.Now().UTC(),
		id:          uuid.New(),
	}
}

// SuccessIf succeeds when predicate holds and fails with description otherwise.
func SuccessIf(predicate func() bool, description string) Result {
	if predicate() {
		return Success()
	}
	return Fail(description)
}

// FailIf fails with description when predicate holds and succeeds otherwise.
func FailIf(predicate func() bool, description string) Result {
	if predicate() {
		return Fail(description)
	}
	return Success()
}

func FromError(err error) Result {
	if rop.IsNil(err) {
		return Success()
	}
	return Fail(err.Error())
}

// From drops the payload of a value result, keeping its state and identity.
func From[T any](r rop.Result[T]) Result {
	return Result{
		description: r.ErrorDescription(),
		isSuccess:   r.IsSuccess(),
		createdAt:   r.CreatedAt(),
		id:          r.Id(),
	}
}

func (r Result) ErrorDescription() string {
	return r.description
}

func (r Result) Err() error {
	if r.isSuccess {
		return nil
	}
	return errors.New(r.description)
}

func (r Result) IsSuccess() bool {
	return r.isSuccess
}

func (r Result) IsFailure() bool {
	return !r.isSuccess && r.id != uuid.Nil
}

func (r Result) IsEmpty() bool {
	return r.id == uuid.Nil
}

func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result) Id() uuid.UUID {
	return r.id
}

// Finally collapses r into a concrete value.
func Finally[Out any](r Result, onSuccess func() Out, onFailure func(description string) Out) Out {
	if r.isSuccess {
		return onSuccess()
	}
	return onFailure(r.description)
}
